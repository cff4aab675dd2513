package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgpostgres"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid pkguid.StringID

	// resources
	database *pkgpostgres.Pool

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLogging()
	app.initLibraries()
	app.initDatabase()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
