package pkgroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 10

// ErrPanic wraps a panic raised by a task.
var ErrPanic = errors.New("goroutine panicked")

// Manager runs functions in goroutines with a configurable concurrency limit.
//
// It collects errors returned by tasks and can be waited on using Wait.
type Manager struct {
	mu   sync.Mutex
	errs []error
	wg   sync.WaitGroup
	sema chan struct{}
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{
		sema: make(chan struct{}, maxGoroutine),
	}
}

// Go schedules f, blocking while the manager is at its concurrency limit.
//
// If ctx is done before a slot frees up, f is not run and ctx.Err() is
// recorded.
func (g *Manager) Go(ctx context.Context, f func(ctx context.Context) error) {
	select {
	case g.sema <- struct{}{}:
	case <-ctx.Done():
		slog.WarnContext(ctx, "goroutine canceled before start", "because", ctx.Err())
		g.record(ctx.Err())
		return
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() { <-g.sema }()
		defer func() {
			if rvr := recover(); rvr != nil {
				slog.ErrorContext(ctx, "panic occurred in goroutine", "because", rvr, "stack", string(debug.Stack()))
				g.record(fmt.Errorf("%w: %v", ErrPanic, rvr))
			}
		}()

		g.record(f(ctx))
	}()
}

// Wait blocks until all scheduled goroutines finish and returns any collected errors.
func (g *Manager) Wait() error {
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}

func (g *Manager) record(err error) {
	if err == nil {
		return
	}
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}

// Run executes fns concurrently and waits for all of them.
func Run(ctx context.Context, fns ...func(ctx context.Context) error) error {
	m := NewManager(len(fns))
	for _, f := range fns {
		m.Go(ctx, f)
	}
	return m.Wait()
}
