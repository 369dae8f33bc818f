package views

import (
	"context"
	"html/template"

	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/nav"
)

var statusBodyTmpl = template.Must(template.New("status-body").Parse(`<div class="status">
  <p class="status-message">{{.Message}}</p>
  <a href="{{.BackHref}}" class="status-back">{{.BackLabel}}</a>
</div>`))

var statusPageTmpl = template.Must(template.New("status-page").Parse(`<div class="status status-page">
  <h1>{{.Title}}</h1>
  <p class="status-message">{{.Message}}</p>
  <a href="{{.BackHref}}" class="status-back">{{.BackLabel}}</a>
</div>`))

type statusData struct {
	Title     string
	Message   string
	BackHref  nav.Target
	BackLabel string
}

// StatusView is a terminal screen (not found, forbidden). It adapts to
// the session: inside the chrome for a signed-in viewer, a bare page
// otherwise.
type StatusView struct {
	base
	title   string
	message string
}

func (v *StatusView) Render(_ context.Context, viewer auth.Identity, _ string) error {
	data := statusData{
		Title:     v.title,
		Message:   v.message,
		BackHref:  nav.TargetDashboard,
		BackLabel: "Back to dashboard",
	}
	if !viewer.WellFormed() {
		data.BackHref = nav.TargetLogin
		data.BackLabel = "Go to login"
		return v.fullPage(statusPageTmpl, data)
	}
	return v.screen(v.title, statusBodyTmpl, data)
}

// forbidden renders the access-denied screen in place of a view whose
// role check failed. The guard has already run, so the viewer is
// signed in and the chrome is up.
func (b base) forbidden() error {
	return b.screen("Not allowed", statusBodyTmpl, statusData{
		Message:   "You do not have permission to view this page.",
		BackHref:  nav.TargetDashboard,
		BackLabel: "Back to dashboard",
	})
}

var _ nav.View = (*StatusView)(nil)
