package inbound

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/goscaffold/internal/meta/usecase"
)

type HTTPEndpoint struct {
	uc uc
}

// Health always answers 200; a failing component shows up as "down" in the
// body.
func (h *HTTPEndpoint) Health(ctx context.Context, _ *http.Request) (any, error) {
	reports := h.uc.Health(ctx)

	resp := make(HealthResponse, len(reports))
	for name, report := range reports {
		resp[name] = toComponentHealth(report)
	}

	return resp, nil
}

func (h *HTTPEndpoint) Version(ctx context.Context, _ *http.Request) (any, error) {
	result := h.uc.Version(ctx)

	return VersionResponse{
		Name:    result.Name,
		Version: result.Version,
	}, nil
}

func toComponentHealth(r usecase.Report) ComponentHealth {
	return ComponentHealth{
		Status:        string(r.Status),
		Duration:      r.Duration,
		ServerVersion: r.ServerVersion,
		ErrorID:       r.ErrorID,
		Error:         r.Error,
	}
}
