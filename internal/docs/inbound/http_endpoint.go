package inbound

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgerror"
)

const swaggerPage = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Documentation</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@` + SwaggerUIVersion + `/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@` + SwaggerUIVersion + `/swagger-ui-bundle.js" crossorigin></script>
  <script>
    window.onload = () => {
      window.ui = SwaggerUIBundle({ url: '/docs/openapi.json', dom_id: '#swagger-ui' });
    };
  </script>
</body>
</html>
`

type HTTPEndpoint struct {
	definition []byte
}

func (h *HTTPEndpoint) Swagger(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(swaggerPage)); err != nil {
		slog.WarnContext(r.Context(), "failed to write swagger page", "error", err)
	}
}

// OpenAPI returns the definition as-is once it is known to be valid JSON.
func (h *HTTPEndpoint) OpenAPI(_ context.Context, _ *http.Request) (any, error) {
	var definition json.RawMessage
	if err := json.Unmarshal(h.definition, &definition); err != nil {
		return nil, pkgerror.NewServer(fmt.Errorf("failed to parse OpenAPI definition: %w", err))
	}

	return definition, nil
}
