package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func (a *App) Start() <-chan struct{} {
	terminateChan := make(chan struct{})

	ln, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		slog.Error("failed to listen http server", "address", a.httpServer.Addr, "error", err)
		os.Exit(1)
	}

	go func() {
		slog.Info("http server listening", "address", ln.Addr().String())

		if err := a.httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to serve http server", "error", err)
			os.Exit(1)
		}
	}()

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

		<-sigint

		if a.cancel != nil {
			a.cancel()
		}

		terminateChan <- struct{}{}
		close(terminateChan)

		slog.Info("application gracefully shutdown")
	}()

	return terminateChan
}

func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	// Stop accepting requests before releasing what they depend on.
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
	}

	for name, closer := range a.closerFn {
		if name == "HTTP Server" {
			continue
		}
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}
}
