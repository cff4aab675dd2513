package inbound

type ComponentHealth struct {
	Status        string `json:"status"`
	Duration      int64  `json:"duration"`
	ServerVersion string `json:"server_version,omitempty"`
	ErrorID       string `json:"error_id,omitempty"`
	Error         string `json:"error,omitempty"`
}

// HealthResponse is keyed by component name, e.g. "database".
type HealthResponse map[string]ComponentHealth

type VersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
