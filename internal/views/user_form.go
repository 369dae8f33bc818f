package views

import (
	"context"
	"html/template"

	"github.com/target/eventshell/internal/domain/auth"
	apperrors "github.com/target/eventshell/internal/errors"
	"github.com/target/eventshell/internal/nav"
	"github.com/target/eventshell/internal/service"
)

var userFormTmpl = template.Must(template.New("user-form").Parse(`<form id="user-form" class="user-form" data-id="{{.ID}}">
  {{if .Error}}<p class="form-error">{{.Error}}</p>{{end}}
  <label>Name
    <input type="text" name="name" value="{{.Name}}" required>
  </label>
  <label>Email
    <input type="email" name="email" value="{{.Email}}" required>
  </label>
  <label>Password
    <input type="password" name="password"{{if not .ID}} required{{end}}>
  </label>
  {{if .ID}}<p class="form-hint">Leave the password empty to keep the current one.</p>{{end}}
  <label>Role
    <select name="role">
      {{$selected := .Role}}{{range .Roles}}<option value="{{.}}"{{if eq . $selected}} selected{{end}}>{{.}}</option>{{end}}
    </select>
  </label>
  <button type="submit">{{.Action}}</button>
</form>`))

type userFormData struct {
	ID     string
	Action string
	Error  string
	Name   string
	Email  string
	Role   auth.Role
	Roles  []auth.Role
}

// UserFormView serves account creation and the dynamic edit screen.
// Admin only.
type UserFormView struct {
	base
	users *service.UserService
}

func (v *UserFormView) Render(ctx context.Context, viewer auth.Identity, param string) error {
	if !viewer.CanManageUsers() {
		return v.forbidden()
	}

	data := userFormData{ID: param, Action: "Create user", Role: auth.RoleGuest}
	if param != "" {
		u, err := v.users.Get(ctx, param)
		if err != nil {
			if apperrors.IsNotFound(err) {
				v.nav.Go(nav.TargetNotFound)
				return nil
			}
			return err
		}
		data.Action = "Save changes"
		data.Name = u.Name
		data.Email = u.Email
		data.Role = u.Role
	}

	roles, err := v.users.Roles(ctx)
	if err != nil {
		return err
	}
	data.Roles = roles

	title := "Create user"
	if param != "" {
		title = "Edit user"
	}
	return v.screen(title, userFormTmpl, data)
}

// Submit creates or updates the account. Success routes back to the
// user table; a rejection re-renders the form with the message.
func (v *UserFormView) Submit(ctx context.Context, viewer auth.Identity, param, name, email, secret string, role auth.Role) error {
	if !viewer.CanManageUsers() {
		return v.forbidden()
	}

	var err error
	if param == "" {
		_, err = v.users.Create(ctx, service.CreateUserInput{
			Name: name, Email: email, Secret: secret, Role: role,
		})
	} else {
		_, err = v.users.Update(ctx, param, service.UpdateUserInput{
			Name: name, Email: email, Secret: secret, Role: role,
		})
	}
	if err != nil {
		v.logger.Info("user form rejected", "id", param, "error", err)
		data := userFormData{
			ID: param, Action: "Create user",
			Error: apperrors.UserMessage(err),
			Name:  name, Email: email, Role: role,
		}
		if param != "" {
			data.Action = "Save changes"
		}
		roles, rerr := v.users.Roles(ctx)
		if rerr != nil {
			return rerr
		}
		data.Roles = roles
		title := "Create user"
		if param != "" {
			title = "Edit user"
		}
		return v.screen(title, userFormTmpl, data)
	}

	v.nav.Go(nav.TargetUsers)
	return nil
}

var _ nav.View = (*UserFormView)(nil)
