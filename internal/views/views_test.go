package views

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/target/eventshell/internal/adapters/memdoc"
	"github.com/target/eventshell/internal/adapters/memstore"
	"github.com/target/eventshell/internal/adapters/restapi"
	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/nav"
	"github.com/target/eventshell/internal/ports"
	"github.com/target/eventshell/internal/service"
	"github.com/target/eventshell/internal/testutil"
)

// frozenNow keeps date arithmetic in the rendered screens stable.
var frozenNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

type navRecorder struct {
	targets []nav.Target
}

func (n *navRecorder) Go(target nav.Target) {
	n.targets = append(n.targets, target)
}

func (n *navRecorder) last() nav.Target {
	if len(n.targets) == 0 {
		return ""
	}
	return n.targets[len(n.targets)-1]
}

type fixture struct {
	backend *testutil.FakeBackend
	doc     *memdoc.Document
	nav     *navRecorder
	set     *Set
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	backend := testutil.NewFakeBackend()
	t.Cleanup(backend.Close)

	client, err := restapi.NewClient(restapi.Config{BaseURL: backend.URL()})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Sessions: memstore.NewStore(),
		Users:    client.Users(),
		Logger:   logger,
	})
	eventSvc := service.NewEventService(service.EventServiceOptions{
		Events: client.Events(),
		Logger: logger,
		Now:    func() time.Time { return frozenNow },
	})
	userSvc := service.NewUserService(service.UserServiceOptions{
		Users:  client.Users(),
		Events: client.Events(),
		Logger: logger,
	})

	doc := memdoc.New()
	rec := &navRecorder{}
	set := NewSet(Deps{
		Doc:    doc,
		Nav:    rec,
		Auth:   authSvc,
		Events: eventSvc,
		Users:  userSvc,
		Logger: logger,
		Now:    func() time.Time { return frozenNow },
	})
	return &fixture{backend: backend, doc: doc, nav: rec, set: set}
}

// mountChrome opens the chrome regions the protected screens write to.
func (f *fixture) mountChrome(t *testing.T) {
	t.Helper()
	f.doc.MountChrome(`<div class="layout"></div>`)
	require.True(t, f.doc.ChromeMounted())
}

func (f *fixture) region(t *testing.T, region ports.Region) *goquery.Document {
	t.Helper()
	markup, ok := f.doc.HTML(region)
	require.True(t, ok, "region %s should be present", region)
	q, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return q
}

func (f *fixture) content(t *testing.T) *goquery.Document {
	return f.region(t, ports.RegionContent)
}

func (f *fixture) title(t *testing.T) string {
	t.Helper()
	return f.region(t, ports.RegionTitle).Find("h1").Text()
}

func adminViewer() auth.Identity {
	return auth.Identity{ID: "u-admin", Name: "Ada", Email: "ada@x.com", Role: auth.RoleAdmin}
}

func organizerViewer() auth.Identity {
	return auth.Identity{ID: "u-org", Name: "Omar", Email: "omar@x.com", Role: auth.RoleOrganizer}
}

func guestViewer() auth.Identity {
	return auth.Identity{ID: "u-guest", Name: "Gia", Email: "gia@x.com", Role: auth.RoleGuest}
}

func ctx() context.Context { return context.Background() }
