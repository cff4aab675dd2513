package docs

import (
	_ "embed"

	"github.com/shandysiswandi/goscaffold/internal/docs/inbound"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgrouter"
)

//go:embed openapi.json
var openAPIDefinition []byte

type Dependency struct {
	Router *pkgrouter.Router
}

func New(dep Dependency) error {
	inbound.RegisterHTTPEndpoint(dep.Router, openAPIDefinition)

	return nil
}
