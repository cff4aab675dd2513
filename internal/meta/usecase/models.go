package usecase

// Status is the liveness state of a probed component.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Report is the outcome of a single health probe.
//
// ServerVersion is only set when the component is up; ErrorID and Error only
// when it is down.
type Report struct {
	Status        Status
	Duration      int64 // milliseconds
	ServerVersion string
	ErrorID       string
	Error         string
}

// VersionResult identifies the running service.
type VersionResult struct {
	Name    string
	Version string
}
