package views

import (
	"context"
	"html/template"
	"time"

	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/domain/model"
	apperrors "github.com/target/eventshell/internal/errors"
	"github.com/target/eventshell/internal/nav"
	"github.com/target/eventshell/internal/service"
	"github.com/target/eventshell/internal/util"
)

var eventsTmpl = template.Must(template.New("events").Parse(`<div class="events">
  {{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
  {{if not .Events}}<p class="empty">No events yet.</p>{{end}}
  {{range .Events}}<article class="event-card" data-id="{{.ID}}">
    <h2 class="event-title">{{.Title}}</h2>
    <span class="event-category">{{.Category}}</span>
    <p class="event-when">{{.When}} <span class="event-relative">({{.Relative}})</span></p>
    <p class="event-organizer">Organized by {{.Organizer}}</p>
    <p class="event-capacity">{{.Spots}} spots left, {{.Registered}} registered</p>
    {{if .CanRegister}}<button class="register" data-action="register" data-id="{{.ID}}">Register</button>{{end}}
    {{if .RegisteredAlready}}<span class="registered-badge">Registered</span>{{end}}
    {{if .CanManage}}<a class="edit" href="{{.EditHref}}">Edit</a>
    <button class="delete" data-action="delete" data-id="{{.ID}}">Delete</button>{{end}}
  </article>{{end}}
</div>`))

type eventCard struct {
	ID                string
	Title             string
	Category          string
	When              string
	Relative          string
	Organizer         string
	Spots             int
	Registered        int
	CanRegister       bool
	RegisteredAlready bool
	CanManage         bool
	EditHref          nav.Target
}

type eventsData struct {
	Notice string
	Events []eventCard
}

// EventsView lists the events visible to the viewer. Guests can
// register; admins and organizers get edit and delete controls.
type EventsView struct {
	base
	events *service.EventService
}

func (v *EventsView) Render(ctx context.Context, viewer auth.Identity, _ string) error {
	return v.render(ctx, viewer, "")
}

func (v *EventsView) render(ctx context.Context, viewer auth.Identity, notice string) error {
	list, err := v.events.ListForViewer(ctx, viewer)
	if err != nil {
		return err
	}
	now := v.now()
	data := eventsData{Notice: notice}
	for _, e := range list {
		data.Events = append(data.Events, v.card(e, viewer, now))
	}
	return v.screen("Events", eventsTmpl, data)
}

func (v *EventsView) card(e model.Event, viewer auth.Identity, now time.Time) eventCard {
	registered := e.HasGuest(viewer.Email)
	return eventCard{
		ID:                e.ID,
		Title:             e.Title,
		Category:          e.Category,
		When:              util.FormatEventDateTime(e),
		Relative:          util.RelativeTime(e, now),
		Organizer:         e.Organizer,
		Spots:             e.Capacity,
		Registered:        len(e.Registered),
		CanRegister:       viewer.IsGuest() && !registered && !e.IsFull() && !e.IsPast(now),
		RegisteredAlready: viewer.IsGuest() && registered,
		CanManage:         viewer.CanManageEvents(),
		EditHref:          nav.EditEvent(e.ID),
	}
}

// Register signs the viewer up for an event and re-renders the list
// with the outcome. Only guests register.
func (v *EventsView) Register(ctx context.Context, viewer auth.Identity, eventID string) error {
	if !viewer.IsGuest() {
		return v.forbidden()
	}
	if _, err := v.events.RegisterGuest(ctx, eventID, viewer.Email); err != nil {
		v.logger.Info("registration rejected", "event", eventID, "error", err)
		return v.render(ctx, viewer, apperrors.UserMessage(err))
	}
	return v.render(ctx, viewer, "You are registered.")
}

// Delete removes an event and re-renders the list. Admins and
// organizers only.
func (v *EventsView) Delete(ctx context.Context, viewer auth.Identity, eventID string) error {
	if !viewer.CanManageEvents() {
		return v.forbidden()
	}
	if err := v.events.Delete(ctx, eventID); err != nil {
		v.logger.Error("deleting event failed", "event", eventID, "error", err)
		return v.render(ctx, viewer, apperrors.UserMessage(err))
	}
	return v.render(ctx, viewer, "Event deleted.")
}

var _ nav.View = (*EventsView)(nil)
