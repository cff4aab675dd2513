package meta

import (
	"github.com/shandysiswandi/goscaffold/internal/meta/inbound"
	"github.com/shandysiswandi/goscaffold/internal/meta/usecase"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkguid"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgversion"
)

type Dependency struct {
	Router   *pkgrouter.Router
	Database usecase.Pool
	ID       pkguid.StringID
}

func New(dep Dependency) error {
	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	uc := usecase.New(usecase.Dependency{
		Checks: map[string]usecase.Checker{
			"database": usecase.NewDatabaseCheck(dep.Database, dep.ID),
		},
		Name:    pkgversion.Name,
		Version: pkgversion.Version,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
