package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgpostgres"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkguid"
)

var errDatabaseNotConfigured = errors.New("database is not configured")

// Pool hands out database connections.
type Pool interface {
	Acquire(ctx context.Context) (pkgpostgres.Conn, error)
}

// Checker probes one component. Check never fails: an unavailable
// component is reported as down.
type Checker interface {
	Check(ctx context.Context) Report
}

// DatabaseCheck reports whether a connection can be acquired from the pool.
type DatabaseCheck struct {
	pool Pool
	ids  pkguid.StringID
}

// NewDatabaseCheck builds a DatabaseCheck. Error ids come from ids.
func NewDatabaseCheck(pool Pool, ids pkguid.StringID) *DatabaseCheck {
	if ids == nil {
		ids = pkguid.NewUUID()
	}
	return &DatabaseCheck{pool: pool, ids: ids}
}

// Check acquires and immediately releases one connection. It relies on the
// pool's own acquire timeout and does not retry.
func (c *DatabaseCheck) Check(ctx context.Context) Report {
	start := time.Now()

	var (
		conn pkgpostgres.Conn
		err  = errDatabaseNotConfigured
	)
	if c.pool != nil {
		conn, err = c.pool.Acquire(ctx)
	}
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		errorID := c.ids.Generate()
		slog.ErrorContext(ctx, "database health check failed",
			"error_id", errorID,
			"duration", elapsed,
			"error", err,
		)
		return Report{
			Status:   StatusDown,
			Duration: elapsed,
			ErrorID:  errorID,
			Error:    pkgpostgres.Redact(err.Error()),
		}
	}
	defer conn.Release()

	return Report{
		Status:        StatusUp,
		Duration:      elapsed,
		ServerVersion: conn.ServerVersion(),
	}
}
