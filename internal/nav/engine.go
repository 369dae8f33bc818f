package nav

import (
	"context"
	"log/slog"

	"github.com/target/eventshell/internal/domain/auth"
	apperrors "github.com/target/eventshell/internal/errors"
)

// Authenticator is the slice of the auth service the engine needs.
type Authenticator interface {
	Verify(ctx context.Context) (auth.Identity, bool)
	Logout(ctx context.Context) error
}

// Shell controls the persistent chrome around the views.
type Shell interface {
	Mount(viewer auth.Identity)
	Unmount()
	SetActive(target Target)
}

// Navigator is the view-facing side of the engine: views request
// navigation, they never perform it.
type Navigator interface {
	Go(target Target)
}

const defaultQueueSize = 16

// EngineOptions configures a navigation Engine.
type EngineOptions struct {
	Auth      Authenticator
	Shell     Shell
	Routes    *Table
	Logger    *slog.Logger
	QueueSize int
}

// Engine runs navigation. Requests enter through Go and are consumed
// serially by Run, so one navigation always finishes before the next
// begins.
type Engine struct {
	auth   Authenticator
	shell  Shell
	routes *Table
	logger *slog.Logger
	queue  chan Target
}

func NewEngine(opts EngineOptions) *Engine {
	size := opts.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		auth:   opts.Auth,
		shell:  opts.Shell,
		routes: opts.Routes,
		logger: logger,
		queue:  make(chan Target, size),
	}
}

// Go enqueues a navigation request. When the queue is full the request
// is dropped and logged rather than blocking the caller.
func (e *Engine) Go(target Target) {
	select {
	case e.queue <- target:
	default:
		e.logger.Warn("navigation queue full, dropping request", "target", target)
	}
}

// GoRaw parses a raw fragment and enqueues it.
func (e *Engine) GoRaw(raw string) {
	e.Go(Parse(raw))
}

// Logout ends the session and routes back to the login screen.
func (e *Engine) Logout(ctx context.Context) {
	if err := e.auth.Logout(ctx); err != nil {
		e.logger.Error("logout failed", "error", err)
	}
	e.Go(TargetLogin)
}

// Run consumes the queue until the context is canceled.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case target := <-e.queue:
			if err := e.Navigate(ctx, target); err != nil {
				e.logger.Error("navigation failed",
					"target", target, "error", err)
			}
		}
	}
}

// Navigate performs a single navigation pass: re-verify the session,
// apply the route guard, reconcile the shell, and dispatch to the
// matching view. Guard redirects are enqueued, not rendered inline.
func (e *Engine) Navigate(ctx context.Context, target Target) error {
	viewer, authenticated := e.auth.Verify(ctx)

	switch Evaluate(target, authenticated) {
	case RedirectLogin:
		e.logger.Info("guard redirect to login", "target", target)
		e.Go(TargetLogin)
		return nil
	case RedirectLanding:
		e.logger.Info("guard redirect to landing", "target", target)
		e.Go(TargetDashboard)
		return nil
	}

	if authenticated {
		e.shell.Mount(viewer)
	} else {
		e.shell.Unmount()
	}

	view, param, ok := e.routes.Resolve(target)
	if !ok {
		e.logger.Warn("unknown target", "target", target)
		view, param, ok = e.routes.Resolve(TargetNotFound)
		if !ok {
			return apperrors.Internal("no view registered for unknown targets")
		}
		target = TargetNotFound
	}

	if err := view.Render(ctx, viewer, param); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "render %s", target)
	}

	e.shell.SetActive(target)
	return nil
}

var _ Navigator = (*Engine)(nil)
