package views

import (
	"context"
	"html/template"

	"github.com/target/eventshell/internal/domain/auth"
	apperrors "github.com/target/eventshell/internal/errors"
	"github.com/target/eventshell/internal/nav"
	"github.com/target/eventshell/internal/service"
)

var loginTmpl = template.Must(template.New("login").Parse(`<div class="auth-card">
  <h1>Sign in</h1>
  {{if .Error}}<p class="form-error">{{.Error}}</p>{{end}}
  <form id="login-form">
    <label>Email
      <input type="email" name="email" value="{{.Email}}" required>
    </label>
    <label>Password
      <input type="password" name="password" required>
    </label>
    <button type="submit">Sign in</button>
  </form>
  <p class="auth-switch">No account yet? <a href="#/register">Register</a></p>
</div>`))

type loginData struct {
	Email string
	Error string
}

// LoginView is the sign-in screen.
type LoginView struct {
	base
	auth *service.AuthService
}

func (v *LoginView) Render(_ context.Context, _ auth.Identity, _ string) error {
	return v.fullPage(loginTmpl, loginData{})
}

// Submit attempts a login. Success routes to the dashboard; a failure
// re-renders the form with the error and the email kept.
func (v *LoginView) Submit(ctx context.Context, email, secret string) error {
	if _, err := v.auth.Login(ctx, email, secret); err != nil {
		v.logger.Info("login rejected", "email", email, "error", err)
		return v.fullPage(loginTmpl, loginData{
			Email: email,
			Error: apperrors.UserMessage(err),
		})
	}
	v.nav.Go(nav.TargetDashboard)
	return nil
}

var _ nav.View = (*LoginView)(nil)
