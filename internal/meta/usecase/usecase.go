package usecase

import (
	"context"
	"sync"

	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgroutine"
)

// Dependency wires the meta usecase.
type Dependency struct {
	// Checks maps a component name (as it appears in the health response)
	// to its probe.
	Checks  map[string]Checker
	Name    string
	Version string
}

// Usecase answers health and version queries.
type Usecase struct {
	checks  map[string]Checker
	name    string
	version string
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		checks:  dep.Checks,
		name:    dep.Name,
		version: dep.Version,
	}
}

// Health probes every component concurrently and returns their reports
// keyed by component name.
func (u *Usecase) Health(ctx context.Context) map[string]Report {
	var mu sync.Mutex
	reports := make(map[string]Report, len(u.checks))

	fns := make([]func(context.Context) error, 0, len(u.checks))
	for name, check := range u.checks {
		fns = append(fns, func(ctx context.Context) error {
			report := check.Check(ctx)
			mu.Lock()
			reports[name] = report
			mu.Unlock()
			return nil
		})
	}

	// Checkers never fail; only a canceled request can leave a report out.
	_ = pkgroutine.Run(ctx, fns...)

	return reports
}

// Version returns the service identity.
func (u *Usecase) Version(context.Context) VersionResult {
	return VersionResult{Name: u.name, Version: u.version}
}
