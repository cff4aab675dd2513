package inbound

import (
	"context"

	"github.com/shandysiswandi/goscaffold/internal/meta/usecase"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgrouter"
)

type uc interface {
	Health(ctx context.Context) map[string]usecase.Report
	Version(ctx context.Context) usecase.VersionResult
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	meta := r.Group("/meta")
	meta.GET("/health", end.Health)
	meta.GET("/version", end.Version)
}
