package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/target/eventshell/internal/domain/model"
	"github.com/target/eventshell/internal/ports"
)

// EventCatalog implements ports.EventCatalog over the /events collection.
type EventCatalog struct {
	c *Client
}

var _ ports.EventCatalog = (*EventCatalog)(nil)

func (e *EventCatalog) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := e.c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (e *EventCatalog) Get(ctx context.Context, id string) (model.Event, error) {
	var event model.Event
	if err := e.c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(id), nil, &event); err != nil {
		return model.Event{}, err
	}
	return event, nil
}

func (e *EventCatalog) Create(ctx context.Context, event model.Event) (model.Event, error) {
	var created model.Event
	if err := e.c.do(ctx, http.MethodPost, "/events", event, &created); err != nil {
		return model.Event{}, err
	}
	return created, nil
}

func (e *EventCatalog) Patch(ctx context.Context, id string, patch model.EventPatch) (model.Event, error) {
	var updated model.Event
	if err := e.c.do(ctx, http.MethodPatch, "/events/"+url.PathEscape(id), patch, &updated); err != nil {
		return model.Event{}, err
	}
	return updated, nil
}

func (e *EventCatalog) Delete(ctx context.Context, id string) error {
	return e.c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(id), nil, nil)
}
