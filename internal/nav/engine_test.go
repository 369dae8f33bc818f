package nav

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/eventshell/internal/domain/auth"
)

type fakeAuth struct {
	viewer        auth.Identity
	authenticated bool
	logouts       int
	logoutErr     error
}

func (f *fakeAuth) Verify(context.Context) (auth.Identity, bool) {
	return f.viewer, f.authenticated
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	f.authenticated = false
	f.viewer = auth.Identity{}
	return f.logoutErr
}

type fakeShell struct {
	mounts   int
	unmounts int
	viewer   auth.Identity
	active   Target
}

func (f *fakeShell) Mount(viewer auth.Identity) {
	f.mounts++
	f.viewer = viewer
}

func (f *fakeShell) Unmount()           { f.unmounts++ }
func (f *fakeShell) SetActive(t Target) { f.active = t }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(aut *fakeAuth, shell *fakeShell, routes *Table) *Engine {
	return NewEngine(EngineOptions{
		Auth:   aut,
		Shell:  shell,
		Routes: routes,
		Logger: quietLogger(),
	})
}

// drain processes every queued request, including requests enqueued by
// guard redirects during processing.
func drain(t *testing.T, e *Engine) {
	t.Helper()
	for {
		select {
		case target := <-e.queue:
			require.NoError(t, e.Navigate(context.Background(), target))
		default:
			return
		}
	}
}

func TestNavigateProtectedUnauthenticated(t *testing.T) {
	events := &recordingView{}
	login := &recordingView{}
	routes := NewTable().
		Handle(TargetEvents, events).
		Handle(TargetLogin, login)
	aut := &fakeAuth{}
	shell := &fakeShell{}
	e := newTestEngine(aut, shell, routes)

	e.Go(TargetEvents)
	drain(t, e)

	assert.Zero(t, events.calls, "protected view must not render without a session")
	assert.Equal(t, 1, login.calls)
	assert.Equal(t, TargetLogin, shell.active)
	assert.Zero(t, shell.mounts)
}

func TestNavigateAuthGateRedirectsToLanding(t *testing.T) {
	login := &recordingView{}
	dashboard := &recordingView{}
	routes := NewTable().
		Handle(TargetLogin, login).
		Handle(TargetDashboard, dashboard)
	viewer := auth.Identity{ID: "u1", Email: "ana@x.com", Role: auth.RoleAdmin}
	aut := &fakeAuth{viewer: viewer, authenticated: true}
	shell := &fakeShell{}
	e := newTestEngine(aut, shell, routes)

	e.Go(TargetLogin)
	drain(t, e)

	assert.Zero(t, login.calls)
	assert.Equal(t, 1, dashboard.calls)
	assert.Equal(t, viewer, dashboard.viewer)
	assert.Equal(t, TargetDashboard, shell.active)
}

func TestNavigateMountsShellForAuthenticated(t *testing.T) {
	events := &recordingView{}
	routes := NewTable().Handle(TargetEvents, events)
	viewer := auth.Identity{ID: "u1", Email: "ana@x.com", Role: auth.RoleGuest}
	aut := &fakeAuth{viewer: viewer, authenticated: true}
	shell := &fakeShell{}
	e := newTestEngine(aut, shell, routes)

	require.NoError(t, e.Navigate(context.Background(), TargetEvents))

	assert.Equal(t, 1, shell.mounts)
	assert.Equal(t, viewer, shell.viewer)
	assert.Zero(t, shell.unmounts)
	assert.Equal(t, 1, events.calls)
}

func TestNavigateUnmountsShellForPublic(t *testing.T) {
	login := &recordingView{}
	routes := NewTable().Handle(TargetLogin, login)
	aut := &fakeAuth{}
	shell := &fakeShell{}
	e := newTestEngine(aut, shell, routes)

	require.NoError(t, e.Navigate(context.Background(), TargetLogin))

	assert.Equal(t, 1, shell.unmounts)
	assert.Zero(t, shell.mounts)
}

func TestNavigateDynamicParam(t *testing.T) {
	edit := &recordingView{}
	routes := NewTable().HandlePrefix(PrefixEditEvent, edit)
	aut := &fakeAuth{
		viewer:        auth.Identity{ID: "u1", Email: "ana@x.com", Role: auth.RoleAdmin},
		authenticated: true,
	}
	e := newTestEngine(aut, &fakeShell{}, routes)

	require.NoError(t, e.Navigate(context.Background(), EditEvent("42")))

	require.Equal(t, 1, edit.calls)
	assert.Equal(t, "42", edit.param)
}

func TestNavigateUnknownTargetFallsBack(t *testing.T) {
	notFound := &recordingView{}
	routes := NewTable().Handle(TargetNotFound, notFound)
	aut := &fakeAuth{}
	shell := &fakeShell{}
	e := newTestEngine(aut, shell, routes)

	require.NoError(t, e.Navigate(context.Background(), Target("#/banana")))

	assert.Equal(t, 1, notFound.calls)
	assert.Equal(t, TargetNotFound, shell.active)
}

func TestNavigateRenderErrorPropagates(t *testing.T) {
	broken := &recordingView{err: errors.New("boom")}
	routes := NewTable().Handle(TargetLogin, broken)
	e := newTestEngine(&fakeAuth{}, &fakeShell{}, routes)

	err := e.Navigate(context.Background(), TargetLogin)
	require.Error(t, err)
	assert.ErrorContains(t, err, "boom")
}

func TestLogoutRoutesToLogin(t *testing.T) {
	login := &recordingView{}
	routes := NewTable().Handle(TargetLogin, login)
	aut := &fakeAuth{
		viewer:        auth.Identity{ID: "u1", Email: "ana@x.com", Role: auth.RoleGuest},
		authenticated: true,
	}
	shell := &fakeShell{}
	e := newTestEngine(aut, shell, routes)

	e.Logout(context.Background())
	drain(t, e)

	assert.Equal(t, 1, aut.logouts)
	assert.Equal(t, 1, login.calls)
	assert.Equal(t, 1, shell.unmounts)
}

func TestGoDropsWhenQueueFull(t *testing.T) {
	e := NewEngine(EngineOptions{
		Auth:      &fakeAuth{},
		Shell:     &fakeShell{},
		Routes:    NewTable(),
		Logger:    quietLogger(),
		QueueSize: 1,
	})

	e.Go(TargetLogin)
	e.Go(TargetRegister) // dropped, must not block

	assert.Len(t, e.queue, 1)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	e := newTestEngine(&fakeAuth{}, &fakeShell{}, NewTable())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
