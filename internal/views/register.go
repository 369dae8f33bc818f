package views

import (
	"context"
	"html/template"

	"github.com/target/eventshell/internal/domain/auth"
	apperrors "github.com/target/eventshell/internal/errors"
	"github.com/target/eventshell/internal/nav"
	"github.com/target/eventshell/internal/service"
)

var registerTmpl = template.Must(template.New("register").Parse(`<div class="auth-card">
  <h1>Create an account</h1>
  {{if .Error}}<p class="form-error">{{.Error}}</p>{{end}}
  <form id="register-form">
    <label>Name
      <input type="text" name="name" value="{{.Name}}" required>
    </label>
    <label>Email
      <input type="email" name="email" value="{{.Email}}" required>
    </label>
    <label>Password
      <input type="password" name="password" required>
    </label>
    <button type="submit">Register</button>
  </form>
  <p class="auth-switch">Already registered? <a href="#/login">Sign in</a></p>
</div>`))

type registerData struct {
	Name  string
	Email string
	Error string
}

// RegisterView is the self-service signup screen. New accounts get the
// guest role and are signed in right away.
type RegisterView struct {
	base
	auth *service.AuthService
}

func (v *RegisterView) Render(_ context.Context, _ auth.Identity, _ string) error {
	return v.fullPage(registerTmpl, registerData{})
}

// Submit registers and signs in. Success routes to the dashboard.
func (v *RegisterView) Submit(ctx context.Context, name, email, secret string) error {
	if _, err := v.auth.Register(ctx, name, email, secret); err != nil {
		v.logger.Info("registration rejected", "email", email, "error", err)
		return v.fullPage(registerTmpl, registerData{
			Name:  name,
			Email: email,
			Error: apperrors.UserMessage(err),
		})
	}
	v.nav.Go(nav.TargetDashboard)
	return nil
}

var _ nav.View = (*RegisterView)(nil)
