package views

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/domain/model"
	"github.com/target/eventshell/internal/nav"
)

func TestUsersTable(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)
	admin := adminViewer()
	f.backend.SeedUser(model.User{ID: admin.ID, Name: admin.Name, Email: admin.Email, Role: auth.RoleAdmin})
	f.backend.SeedUser(model.User{ID: "u2", Name: "Gia", Email: "gia@x.com", Role: auth.RoleGuest})

	require.NoError(t, f.set.Users.Render(ctx(), admin, ""))

	assert.Equal(t, "Manage Users", f.title(t))
	q := f.content(t)
	require.Equal(t, 2, q.Find("tbody tr").Length())
	// Only the other account gets a delete control.
	assert.Equal(t, 1, q.Find("button.delete").Length())
	rows := q.Find("tbody tr").Map(func(_ int, s *goquery.Selection) string {
		id, _ := s.Attr("data-id")
		return id
	})
	assert.Equal(t, []string{admin.ID, "u2"}, rows)
}

func TestUsersForbiddenForOrganizer(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)

	require.NoError(t, f.set.Users.Render(ctx(), organizerViewer(), ""))

	assert.Equal(t, "Not allowed", f.title(t))
}

func TestUsersDeleteCascades(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)
	f.backend.SeedUser(model.User{ID: "u2", Name: "Gia", Email: "gia@x.com", Role: auth.RoleGuest})
	f.backend.SeedEvent(model.Event{
		ID: "e1", Title: "Spring Concert", Category: "Music",
		Date: "2026-03-15", Time: "19:00", Organizer: "Omar",
		Capacity: 3, Registered: []string{"gia@x.com", "bob@x.com"},
	})

	require.NoError(t, f.set.Users.Delete(ctx(), adminViewer(), "u2"))

	_, ok := f.backend.User("u2")
	assert.False(t, ok)
	stored, ok := f.backend.Event("e1")
	require.True(t, ok)
	assert.Equal(t, []string{"bob@x.com"}, stored.Registered)
	assert.Equal(t, 4, stored.Capacity)
	assert.Contains(t, f.content(t).Find(".notice").Text(), "deleted")
}

func TestUsersDeleteSelfRefused(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)
	admin := adminViewer()
	f.backend.SeedUser(model.User{ID: admin.ID, Name: admin.Name, Email: admin.Email, Role: auth.RoleAdmin})

	require.NoError(t, f.set.Users.Delete(ctx(), admin, admin.ID))

	_, ok := f.backend.User(admin.ID)
	assert.True(t, ok)
	assert.Contains(t, f.content(t).Find(".notice").Text(), "cannot delete your own account")
}

func TestUserFormCreate(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)

	require.NoError(t, f.set.UserForm.Render(ctx(), adminViewer(), ""))

	assert.Equal(t, "Create user", f.title(t))
	q := f.content(t)
	roles := q.Find(`select[name="role"] option`).Map(
		func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Contains(t, roles, "guest")
	assert.Contains(t, roles, "organizer")
}

func TestUserFormSubmitCreate(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)

	require.NoError(t, f.set.UserForm.Submit(ctx(), adminViewer(), "",
		"Omar", "omar@x.com", "secret", auth.RoleOrganizer))

	assert.Equal(t, nav.TargetUsers, f.nav.last())
	u, ok := f.backend.UserByEmail("omar@x.com")
	require.True(t, ok)
	assert.Equal(t, auth.RoleOrganizer, u.Role)
	assert.Equal(t, auth.HashSecret("secret"), u.Password)
}

func TestUserFormSubmitDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)
	f.backend.SeedUser(model.User{Email: "omar@x.com", Role: auth.RoleOrganizer})

	require.NoError(t, f.set.UserForm.Submit(ctx(), adminViewer(), "",
		"Omar", "omar@x.com", "secret", auth.RoleOrganizer))

	assert.Empty(t, f.nav.targets)
	assert.Contains(t, f.content(t).Find(".form-error").Text(), "already registered")
}

func TestUserFormEditKeepsSecretWhenBlank(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)
	digest := auth.HashSecret("hunter2")
	f.backend.SeedUser(model.User{
		ID: "u2", Name: "Gia", Email: "gia@x.com",
		Password: digest, Role: auth.RoleGuest,
	})

	require.NoError(t, f.set.UserForm.Submit(ctx(), adminViewer(), "u2",
		"Gia Renamed", "gia@x.com", "", auth.RoleOrganizer))

	assert.Equal(t, nav.TargetUsers, f.nav.last())
	u, ok := f.backend.User("u2")
	require.True(t, ok)
	assert.Equal(t, "Gia Renamed", u.Name)
	assert.Equal(t, auth.RoleOrganizer, u.Role)
	assert.Equal(t, digest, u.Password)
}

func TestUserFormForbiddenForGuest(t *testing.T) {
	f := newFixture(t)
	f.mountChrome(t)

	require.NoError(t, f.set.UserForm.Render(ctx(), guestViewer(), ""))

	assert.Equal(t, "Not allowed", f.title(t))
}
