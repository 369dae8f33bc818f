package views

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/eventshell/internal/domain/model"
)

func seedConcert(f *fixture) model.Event {
	return f.backend.SeedEvent(model.Event{
		ID: "e1", Title: "Spring Concert", Category: "Music",
		Date: "2026-03-15", Time: "19:00", Organizer: "Omar",
		Capacity: 2, Registered: []string{},
	})
}

func TestEventsListForGuest(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)
	seedConcert(f)

	require.NoError(t, f.set.Events.Render(ctx(), guestViewer(), ""))

	assert.Equal(t, "Events", f.title(t))
	q := f.content(t)
	assert.Equal(t, "Spring Concert", q.Find(".event-title").Text())
	assert.Contains(t, q.Find(".event-when").Text(), "March 15, 2026, 19:00")
	assert.Contains(t, q.Find(".event-relative").Text(), "In 6 days")
	assert.Equal(t, 1, q.Find("button.register").Length())
	assert.Zero(t, q.Find("a.edit").Length())
	assert.Zero(t, q.Find("button.delete").Length())
}

func TestEventsListForAdminShowsManageControls(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)
	e := seedConcert(f)

	require.NoError(t, f.set.Events.Render(ctx(), adminViewer(), ""))

	q := f.content(t)
	assert.Zero(t, q.Find("button.register").Length())
	href, _ := q.Find("a.edit").Attr("href")
	assert.Equal(t, "#/dashboard/events/edit/"+e.ID, href)
	assert.Equal(t, 1, q.Find("button.delete").Length())
}

func TestEventsListOrganizerSeesOwnOnly(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)
	seedConcert(f)
	f.backend.SeedEvent(model.Event{
		ID: "e2", Title: "Other Meetup", Category: "Tech",
		Date: "2026-03-20", Time: "18:00", Organizer: "Somebody Else",
		Capacity: 10, Registered: []string{},
	})

	require.NoError(t, f.set.Events.Render(ctx(), organizerViewer(), ""))

	q := f.content(t)
	require.Equal(t, 1, q.Find(".event-card").Length())
	assert.Equal(t, "Spring Concert", q.Find(".event-title").Text())
}

func TestEventsRegisterAction(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)
	e := seedConcert(f)

	require.NoError(t, f.set.Events.Register(ctx(), guestViewer(), e.ID))

	stored, ok := f.backend.Event(e.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"gia@x.com"}, stored.Registered)
	assert.Equal(t, 1, stored.Capacity)

	q := f.content(t)
	assert.Contains(t, q.Find(".notice").Text(), "You are registered")
	assert.Equal(t, 1, q.Find(".registered-badge").Length())
	assert.Zero(t, q.Find("button.register").Length())
}

func TestEventsRegisterFullEvent(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)
	e := f.backend.SeedEvent(model.Event{
		ID: "e1", Title: "Sold Out", Category: "Music",
		Date: "2026-03-15", Time: "19:00", Organizer: "Omar",
		Capacity: 0, Registered: []string{"ana@x.com"},
	})

	require.NoError(t, f.set.Events.Register(ctx(), guestViewer(), e.ID))

	stored, _ := f.backend.Event(e.ID)
	assert.Equal(t, []string{"ana@x.com"}, stored.Registered)
	assert.Contains(t, f.content(t).Find(".notice").Text(), "full")
}

func TestEventsRegisterForbiddenForOrganizer(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)
	e := seedConcert(f)

	require.NoError(t, f.set.Events.Register(ctx(), organizerViewer(), e.ID))

	assert.Equal(t, "Not allowed", f.title(t))
	stored, _ := f.backend.Event(e.ID)
	assert.Empty(t, stored.Registered)
}

func TestEventsDeleteAction(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)
	e := seedConcert(f)

	require.NoError(t, f.set.Events.Delete(ctx(), adminViewer(), e.ID))

	_, ok := f.backend.Event(e.ID)
	assert.False(t, ok)
	assert.Contains(t, f.content(t).Find(".notice").Text(), "deleted")
}

func TestEventsDeleteForbiddenForGuest(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)
	e := seedConcert(f)

	require.NoError(t, f.set.Events.Delete(ctx(), guestViewer(), e.ID))

	_, ok := f.backend.Event(e.ID)
	assert.True(t, ok)
	assert.Equal(t, "Not allowed", f.title(t))
}

func TestDashboardCounts(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)
	seedConcert(f)
	f.backend.SeedEvent(model.Event{
		ID: "e2", Title: "Past Workshop", Category: "Tech",
		Date: "2026-03-01", Time: "10:00", Organizer: "Omar",
		Capacity: 5, Registered: []string{},
	})

	require.NoError(t, f.set.Dashboard.Render(ctx(), guestViewer(), ""))

	assert.Equal(t, "Dashboard", f.title(t))
	q := f.content(t)
	assert.Contains(t, q.Find(".greeting").Text(), "Gia")
	values := q.Find(".stat-value").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"2", "1"}, values)
	assert.Equal(t, "Spring Concert", q.Find(".next-title").Text())
	assert.Equal(t, "In 6 days", q.Find(".next-when").Text())
}
