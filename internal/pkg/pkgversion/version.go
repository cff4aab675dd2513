// Package pkgversion holds the build identity reported by the service.
package pkgversion

// Name and Version are set at build time:
//
//	go build -ldflags "-X github.com/shandysiswandi/goscaffold/internal/pkg/pkgversion.Version=1.2.3"
//
//nolint:gochecknoglobals // overridden by the linker
var (
	Name    = "goscaffold"
	Version = "0.1.0"
)
