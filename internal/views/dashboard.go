package views

import (
	"context"
	"html/template"
	"sort"

	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/domain/model"
	"github.com/target/eventshell/internal/nav"
	"github.com/target/eventshell/internal/service"
	"github.com/target/eventshell/internal/util"
)

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<div class="dashboard">
  <p class="greeting">Welcome back, {{.Name}}.</p>
  <div class="stats">
    <div class="stat"><span class="stat-value">{{.Total}}</span><span class="stat-label">Events</span></div>
    <div class="stat"><span class="stat-value">{{.Upcoming}}</span><span class="stat-label">Upcoming</span></div>
  </div>
  {{if .NextTitle}}<div class="next-event">
    <span class="next-label">Next event</span>
    <span class="next-title">{{.NextTitle}}</span>
    <span class="next-when">{{.NextWhen}}</span>
  </div>{{end}}
  <a href="{{.EventsHref}}" class="dashboard-link">View all events</a>
</div>`))

type dashboardData struct {
	Name       string
	Total      int
	Upcoming   int
	NextTitle  string
	NextWhen   string
	EventsHref nav.Target
}

// DashboardView is the landing screen: a few counts and the next
// upcoming event for the viewer.
type DashboardView struct {
	base
	events *service.EventService
}

func (v *DashboardView) Render(ctx context.Context, viewer auth.Identity, _ string) error {
	list, err := v.events.ListForViewer(ctx, viewer)
	if err != nil {
		return err
	}

	now := v.now()
	var upcoming []model.Event
	for _, e := range list {
		if !e.IsPast(now) {
			upcoming = append(upcoming, e)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		si, _ := upcoming[i].StartsAt()
		sj, _ := upcoming[j].StartsAt()
		return si.Before(sj)
	})

	data := dashboardData{
		Name:       viewer.Name,
		Total:      len(list),
		Upcoming:   len(upcoming),
		EventsHref: nav.TargetEvents,
	}
	if len(upcoming) > 0 {
		data.NextTitle = upcoming[0].Title
		data.NextWhen = util.RelativeTime(upcoming[0], now)
	}
	return v.screen("Dashboard", dashboardTmpl, data)
}

var _ nav.View = (*DashboardView)(nil)
