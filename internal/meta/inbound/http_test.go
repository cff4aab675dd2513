package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/goscaffold/internal/meta/usecase"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkguid"
)

type fakeUsecase struct {
	reports map[string]usecase.Report
}

func (f *fakeUsecase) Health(context.Context) map[string]usecase.Report {
	return f.reports
}

func (f *fakeUsecase) Version(context.Context) usecase.VersionResult {
	return usecase.VersionResult{Name: "goscaffold", Version: "0.1.0"}
}

func newTestRouter(uc uc) *pkgrouter.Router {
	router := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(router, uc)
	return router
}

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return rec, body
}

func TestHealthUp(t *testing.T) {
	router := newTestRouter(&fakeUsecase{reports: map[string]usecase.Report{
		"database": {Status: usecase.StatusUp, Duration: 3, ServerVersion: "16.4"},
	}})

	rec, body := get(t, router, "/meta/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, pkguid.IsUUID(rec.Header().Get(pkgrouter.HeaderRequestID)))
	assert.Equal(t, map[string]any{
		"database": map[string]any{
			"status":         "up",
			"duration":       float64(3),
			"server_version": "16.4",
		},
	}, body)
}

func TestHealthDownStillOK(t *testing.T) {
	router := newTestRouter(&fakeUsecase{reports: map[string]usecase.Report{
		"database": {
			Status:   usecase.StatusDown,
			Duration: 5000,
			ErrorID:  "0192f0c4-8f6e-7d3a-b1c2-3d4e5f6a7b8c",
			Error:    "acquire connection: context deadline exceeded",
		},
	}})

	rec, body := get(t, router, "/meta/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{
		"database": map[string]any{
			"status":   "down",
			"duration": float64(5000),
			"error_id": "0192f0c4-8f6e-7d3a-b1c2-3d4e5f6a7b8c",
			"error":    "acquire connection: context deadline exceeded",
		},
	}, body)
}

func TestVersion(t *testing.T) {
	router := newTestRouter(&fakeUsecase{})

	rec, first := get(t, router, "/meta/version")
	_, second := get(t, router, "/meta/version")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"name": "goscaffold", "version": "0.1.0"}, first)
	assert.Equal(t, first, second)
}

func TestUnregisteredMethodFallsThrough(t *testing.T) {
	router := newTestRouter(&fakeUsecase{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/meta/version", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, pkgrouter.MsgEndpointNotFound, body["message"])
}
