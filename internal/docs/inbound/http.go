package inbound

import (
	"net/http"

	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgrouter"
)

// SwaggerUIVersion is the swagger-ui-dist major version loaded by the docs page.
const SwaggerUIVersion = "5"

// RegisterHTTPEndpoint serves definition at /docs/openapi.json and a Swagger
// UI page for it at /docs.
func RegisterHTTPEndpoint(r *pkgrouter.Router, definition []byte) {
	end := &HTTPEndpoint{definition: definition}

	docs := r.Group("/docs")
	docs.Handle(http.MethodGet, "", http.HandlerFunc(end.Swagger))
	docs.GET("/openapi.json", end.OpenAPI)
}
