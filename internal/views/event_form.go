package views

import (
	"context"
	"html/template"

	"github.com/target/eventshell/internal/domain/auth"
	apperrors "github.com/target/eventshell/internal/errors"
	"github.com/target/eventshell/internal/nav"
	"github.com/target/eventshell/internal/service"
)

var eventFormTmpl = template.Must(template.New("event-form").Parse(`<form id="event-form" class="event-form" data-id="{{.ID}}">
  {{if .Error}}<p class="form-error">{{.Error}}</p>{{end}}
  <label>Title
    <input type="text" name="title" value="{{.In.Title}}" required>
  </label>
  <label>Description
    <textarea name="description">{{.In.Description}}</textarea>
  </label>
  <label>Category
    <input type="text" name="category" value="{{.In.Category}}" required>
  </label>
  <label>Date
    <input type="date" name="date" value="{{.In.Date}}" required>
  </label>
  <label>Time
    <input type="time" name="time" value="{{.In.Time}}" required>
  </label>
  {{if .Organizers}}<label>Organizer
    <select name="organizer">
      {{$selected := .In.Organizer}}{{range .Organizers}}<option value="{{.}}"{{if eq . $selected}} selected{{end}}>{{.}}</option>{{end}}
    </select>
  </label>{{else}}<input type="hidden" name="organizer" value="{{.In.Organizer}}">{{end}}
  <label>Capacity
    <input type="number" name="capacity" min="0" value="{{.In.Capacity}}" required>
  </label>
  <button type="submit">{{.Action}}</button>
</form>`))

type eventFormData struct {
	ID         string
	Action     string
	Error      string
	In         service.EventInput
	Organizers []string
}

// EventFormView serves both the create screen and the dynamic edit
// screen; the route parameter selects the mode. Admins pick the
// organizer from a dropdown, organizers always publish as themselves.
type EventFormView struct {
	base
	events *service.EventService
	users  *service.UserService
}

func (v *EventFormView) Render(ctx context.Context, viewer auth.Identity, param string) error {
	if !viewer.CanManageEvents() {
		return v.forbidden()
	}

	data := eventFormData{ID: param, Action: "Create event"}
	if param != "" {
		e, err := v.events.Get(ctx, param)
		if err != nil {
			if apperrors.IsNotFound(err) {
				v.nav.Go(nav.TargetNotFound)
				return nil
			}
			return err
		}
		data.Action = "Save changes"
		data.In = service.EventInput{
			Title:       e.Title,
			Description: e.Description,
			Category:    e.Category,
			Date:        e.Date,
			Time:        e.Time,
			Organizer:   e.Organizer,
			Capacity:    e.Capacity,
		}
	}

	redirected, err := v.fillOrganizers(ctx, viewer, &data)
	if err != nil {
		return err
	}
	if redirected {
		return nil
	}

	title := "Create event"
	if param != "" {
		title = "Edit event"
	}
	return v.screen(title, eventFormTmpl, data)
}

// fillOrganizers resolves who the event can be published as. Admins
// choose among organizer accounts and are sent to the create-user
// screen when none exist yet; everyone else publishes as themselves.
// Reports whether it redirected instead of filling the form.
func (v *EventFormView) fillOrganizers(ctx context.Context, viewer auth.Identity, data *eventFormData) (bool, error) {
	if !viewer.CanManageUsers() {
		if data.In.Organizer == "" {
			data.In.Organizer = viewer.Name
		}
		return false, nil
	}
	organizers, err := v.users.Organizers(ctx)
	if err != nil {
		return false, err
	}
	if len(organizers) == 0 {
		v.logger.Info("no organizer accounts, redirecting to user creation")
		v.nav.Go(nav.TargetCreateUser)
		return true, nil
	}
	for _, o := range organizers {
		data.Organizers = append(data.Organizers, o.Name)
	}
	if data.In.Organizer == "" {
		data.In.Organizer = data.Organizers[0]
	}
	return false, nil
}

// Submit creates or updates the event. Success routes back to the
// events list; a validation failure re-renders the form with the
// message and the entered values.
func (v *EventFormView) Submit(ctx context.Context, viewer auth.Identity, param string, in service.EventInput) error {
	if !viewer.CanManageEvents() {
		return v.forbidden()
	}
	if !viewer.CanManageUsers() {
		in.Organizer = viewer.Name
	}

	var err error
	if param == "" {
		_, err = v.events.Create(ctx, in)
	} else {
		_, err = v.events.Update(ctx, param, in)
	}
	if err != nil {
		v.logger.Info("event form rejected", "id", param, "error", err)
		data := eventFormData{ID: param, Action: "Create event", Error: apperrors.UserMessage(err), In: in}
		if param != "" {
			data.Action = "Save changes"
		}
		if redirected, ferr := v.fillOrganizers(ctx, viewer, &data); ferr != nil || redirected {
			return ferr
		}
		title := "Create event"
		if param != "" {
			title = "Edit event"
		}
		return v.screen(title, eventFormTmpl, data)
	}

	v.nav.Go(nav.TargetEvents)
	return nil
}

var _ nav.View = (*EventFormView)(nil)
