package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/goscaffold/internal/docs"
	"github.com/shandysiswandi/goscaffold/internal/meta"
)

func (a *App) initModules() {
	if err := meta.New(meta.Dependency{
		Router:   a.router,
		Database: a.database,
		ID:       a.uuid,
	}); err != nil {
		slog.Error("failed to init module meta", "error", err)
		os.Exit(1)
	}

	if err := docs.New(docs.Dependency{
		Router: a.router,
	}); err != nil {
		slog.Error("failed to init module docs", "error", err)
		os.Exit(1)
	}
}
