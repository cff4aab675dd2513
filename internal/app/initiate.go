package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkglog"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgpostgres"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkguid"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgversion"
)

func (a *App) initConfig() {
	if err := pkgconfig.LoadDotEnv(".env"); err != nil {
		slog.Error("failed to load .env file", "error", err)
		os.Exit(1)
	}

	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	a.config = cfg
}

func (a *App) initLogging() {
	dsn := a.config.GetString("sentry.dsn")
	if dsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			Environment:      a.config.GetString("sentry.environment"),
			Release:          pkgversion.Name + "@" + pkgversion.Version,
			TracesSampleRate: a.config.GetFloat("sentry.traces_sample_rate"),
			AttachStacktrace: true,
		})
		if err != nil {
			slog.Error("failed to init sentry", "error", err)
			os.Exit(1)
		}
	}

	pkglog.InitLogging(pkglog.Options{
		Service: pkgversion.Name,
		Version: pkgversion.Version,
		Level:   pkglog.ParseLevel(a.config.GetString("log.level")),
		Sentry:  dsn != "",
	})
}

func (a *App) initLibraries() {
	a.uuid = pkguid.NewUUID()
}

func (a *App) initDatabase() {
	url := a.config.GetString("database.url")
	if url == "" {
		slog.Error("failed to init database", "error", "database.url is required")
		os.Exit(1)
	}

	pool, err := pkgpostgres.New(a.ctx, pkgpostgres.Config{
		URL:            url,
		MaxConns:       int32(a.config.GetInt("database.max_conns")), //nolint:gosec // small value
		AcquireTimeout: a.config.GetDuration("database.acquire_timeout"),
	})
	if err != nil {
		slog.Error("failed to init database", "error", err)
		os.Exit(1)
	}

	// The service still starts without a reachable database; the health
	// endpoint reports it as down.
	if err := pool.Ping(a.ctx); err != nil {
		slog.Warn("database is not reachable", "target", pool.String(), "error", err)
	} else {
		slog.Info("database connected", "target", pool.String())
	}

	a.database = pool
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)
	a.router.Use(pkgrouter.MiddlewareCORS(pkgrouter.DefaultCORSOptions()))

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Database"] = func(ctx context.Context) error {
		return a.database.Close(ctx)
	}
	a.closerFn["Sentry"] = func(context.Context) error {
		sentry.Flush(2 * time.Second)
		return nil
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
