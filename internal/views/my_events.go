package views

import (
	"context"
	"html/template"

	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/nav"
	"github.com/target/eventshell/internal/service"
	"github.com/target/eventshell/internal/util"
)

var myEventsTmpl = template.Must(template.New("my-events").Parse(`<div class="my-events">
  {{if not .Events}}<p class="empty">You have not registered for any events yet.</p>{{end}}
  {{range .Events}}<article class="event-card" data-id="{{.ID}}">
    <h2 class="event-title">{{.Title}}</h2>
    <span class="event-category">{{.Category}}</span>
    <p class="event-when">{{.When}} <span class="event-relative">({{.Relative}})</span></p>
    <p class="event-organizer">Organized by {{.Organizer}}</p>
  </article>{{end}}
</div>`))

type myEventCard struct {
	ID        string
	Title     string
	Category  string
	When      string
	Relative  string
	Organizer string
}

type myEventsData struct {
	Events []myEventCard
}

// MyEventsView lists the events the guest is registered for.
type MyEventsView struct {
	base
	events *service.EventService
}

func (v *MyEventsView) Render(ctx context.Context, viewer auth.Identity, _ string) error {
	if !viewer.IsGuest() {
		return v.forbidden()
	}
	list, err := v.events.MyEvents(ctx, viewer.Email)
	if err != nil {
		return err
	}
	now := v.now()
	var data myEventsData
	for _, e := range list {
		data.Events = append(data.Events, myEventCard{
			ID:        e.ID,
			Title:     e.Title,
			Category:  e.Category,
			When:      util.FormatEventDateTime(e),
			Relative:  util.RelativeTime(e, now),
			Organizer: e.Organizer,
		})
	}
	return v.screen("My events", myEventsTmpl, data)
}

var _ nav.View = (*MyEventsView)(nil)
