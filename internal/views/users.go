package views

import (
	"context"
	"html/template"

	"github.com/target/eventshell/internal/domain/auth"
	apperrors "github.com/target/eventshell/internal/errors"
	"github.com/target/eventshell/internal/nav"
	"github.com/target/eventshell/internal/service"
)

var usersTmpl = template.Must(template.New("users").Parse(`<div class="users">
  {{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
  <a href="{{.CreateHref}}" class="user-create">Add user</a>
  <table class="user-table">
    <thead><tr><th>Name</th><th>Email</th><th>Role</th><th></th></tr></thead>
    <tbody>
    {{range .Users}}<tr data-id="{{.ID}}">
      <td>{{.Name}}</td>
      <td>{{.Email}}</td>
      <td><span class="role role-{{.Role}}">{{.Role}}</span></td>
      <td>
        <a class="edit" href="{{.EditHref}}">Edit</a>
        {{if .CanDelete}}<button class="delete" data-action="delete" data-id="{{.ID}}">Delete</button>{{end}}
      </td>
    </tr>{{end}}
    </tbody>
  </table>
</div>`))

type userRow struct {
	ID        string
	Name      string
	Email     string
	Role      auth.Role
	EditHref  nav.Target
	CanDelete bool
}

type usersData struct {
	Notice     string
	CreateHref nav.Target
	Users      []userRow
}

// UsersView is the admin account-management screen.
type UsersView struct {
	base
	users *service.UserService
}

func (v *UsersView) Render(ctx context.Context, viewer auth.Identity, _ string) error {
	return v.render(ctx, viewer, "")
}

func (v *UsersView) render(ctx context.Context, viewer auth.Identity, notice string) error {
	if !viewer.CanManageUsers() {
		return v.forbidden()
	}
	list, err := v.users.List(ctx)
	if err != nil {
		return err
	}
	data := usersData{Notice: notice, CreateHref: nav.TargetCreateUser}
	for _, u := range list {
		data.Users = append(data.Users, userRow{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Role:     u.Role,
			EditHref: nav.EditUser(u.ID),
			// Admins cannot delete their own account from here.
			CanDelete: u.ID != viewer.ID,
		})
	}
	return v.screen("Manage Users", usersTmpl, data)
}

// Delete removes an account, cascading its event registrations, and
// re-renders the table.
func (v *UsersView) Delete(ctx context.Context, viewer auth.Identity, userID string) error {
	if !viewer.CanManageUsers() {
		return v.forbidden()
	}
	if userID == viewer.ID {
		return v.render(ctx, viewer, "You cannot delete your own account.")
	}
	if err := v.users.Delete(ctx, userID); err != nil {
		v.logger.Error("deleting user failed", "user", userID, "error", err)
		return v.render(ctx, viewer, apperrors.UserMessage(err))
	}
	return v.render(ctx, viewer, "User deleted.")
}

var _ nav.View = (*UsersView)(nil)
