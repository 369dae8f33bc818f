package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/domain/model"
	apperrors "github.com/target/eventshell/internal/errors"
	"github.com/target/eventshell/internal/ports"
)

// EventServiceOptions groups dependencies for EventService.
type EventServiceOptions struct {
	Events ports.EventCatalog
	Logger *slog.Logger
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// EventService implements event listing, mutation, and guest
// registration over the backend events collection.
type EventService struct {
	events ports.EventCatalog
	logger *slog.Logger
	now    func() time.Time
}

// NewEventService constructs a new EventService.
func NewEventService(opts EventServiceOptions) *EventService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &EventService{
		events: opts.Events,
		logger: logger,
		now:    now,
	}
}

// ListForViewer returns the events visible to the given identity:
// organizers see only their own events (matched by name or email),
// everyone else sees the full catalog.
func (s *EventService) ListForViewer(ctx context.Context, viewer auth.Identity) ([]model.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	if viewer.Role != auth.RoleOrganizer {
		return events, nil
	}
	own := events[:0]
	for _, e := range events {
		if e.Organizer == viewer.Name || e.Organizer == viewer.Email {
			own = append(own, e)
		}
	}
	return slices.Clip(own), nil
}

// MyEvents returns the events the given guest email is registered in.
func (s *EventService) MyEvents(ctx context.Context, email string) ([]model.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	mine := events[:0]
	for _, e := range events {
		if e.HasGuest(email) {
			mine = append(mine, e)
		}
	}
	return slices.Clip(mine), nil
}

// Get returns one event by id.
func (s *EventService) Get(ctx context.Context, id string) (model.Event, error) {
	return s.events.Get(ctx, id)
}

// EventInput carries the editable fields of an event form.
type EventInput struct {
	Title       string
	Description string
	Category    string
	Date        string
	Time        string
	Organizer   string
	Capacity    int
}

// validate rejects incomplete input and any start that is not strictly
// in the future. Caught before the backend is contacted.
func (s *EventService) validate(in EventInput) error {
	for field, value := range map[string]string{
		"title":     in.Title,
		"category":  in.Category,
		"date":      in.Date,
		"time":      in.Time,
		"organizer": in.Organizer,
	} {
		if strings.TrimSpace(value) == "" {
			return apperrors.ValidationField(field, field+" is required")
		}
	}
	if in.Capacity < 0 {
		return apperrors.ValidationField("capacity", "capacity cannot be negative")
	}

	probe := model.Event{Date: in.Date, Time: in.Time}
	start, err := probe.StartsAt()
	if err != nil {
		return apperrors.ValidationField("date", "date and time are malformed")
	}
	if !start.After(s.now()) {
		return apperrors.ValidationField("date", "event date and time must be in the future")
	}
	return nil
}

// Create validates the input and creates the event with an empty
// registration list.
func (s *EventService) Create(ctx context.Context, in EventInput) (model.Event, error) {
	if err := s.validate(in); err != nil {
		return model.Event{}, err
	}
	return s.events.Create(ctx, model.Event{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Date:        in.Date,
		Time:        in.Time,
		Organizer:   in.Organizer,
		Capacity:    in.Capacity,
		Registered:  []string{},
	})
}

// Update validates the input and rewrites the event's editable fields.
// The registration list is left untouched.
func (s *EventService) Update(ctx context.Context, id string, in EventInput) (model.Event, error) {
	if err := s.validate(in); err != nil {
		return model.Event{}, err
	}
	return s.events.Patch(ctx, id, model.EventPatch{
		Title:       &in.Title,
		Description: &in.Description,
		Category:    &in.Category,
		Date:        &in.Date,
		Time:        &in.Time,
		Organizer:   &in.Organizer,
		Capacity:    &in.Capacity,
	})
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}

// RegisterGuest adds the guest email to the event's registration list
// and takes one slot. Past, full, and duplicate registrations are
// rejected before any backend mutation.
func (s *EventService) RegisterGuest(ctx context.Context, eventID, email string) (model.Event, error) {
	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return model.Event{}, err
	}

	if event.IsPast(s.now()) {
		return model.Event{}, apperrors.Validation("cannot register for past events")
	}
	if event.HasGuest(email) {
		return model.Event{}, apperrors.Conflict("you are already registered")
	}
	if event.IsFull() {
		return model.Event{}, apperrors.Conflict("this event is full")
	}

	registered := append(slices.Clone(event.Registered), email)
	capacity := event.Capacity - 1
	return s.events.Patch(ctx, eventID, model.EventPatch{
		Registered: &registered,
		Capacity:   &capacity,
	})
}
