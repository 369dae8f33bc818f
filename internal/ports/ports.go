// Package ports defines interfaces (hexagonal ports) for the shell's
// collaborators. Implementations live in internal/adapters;
// orchestration in internal/service and internal/nav.
package ports

import (
	"context"
	"errors"

	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/domain/model"
)

var (
	// ErrNoSession is returned by SessionStore.Load when no record is stored.
	ErrNoSession = errors.New("no session")
	// ErrMalformedSession is returned by SessionStore.Load when the stored
	// bytes do not decode into an Identity.
	ErrMalformedSession = errors.New("malformed session record")
)

// SessionStore persists the single cached Identity record under a
// fixed key. Load returns ErrNoSession when nothing is stored and
// ErrMalformedSession when the stored bytes do not decode into an
// Identity; callers treat the latter as absent and must Clear.
type SessionStore interface {
	Save(ctx context.Context, ident auth.Identity) error
	Load(ctx context.Context) (auth.Identity, error)
	Clear(ctx context.Context) error
}

// UserDirectory is the backend's users collection.
type UserDirectory interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id string) (model.User, error)
	FindByEmail(ctx context.Context, email string) ([]model.User, error)
	FindByRole(ctx context.Context, role auth.Role) ([]model.User, error)
	Create(ctx context.Context, user model.User) (model.User, error)
	Patch(ctx context.Context, id string, patch model.UserPatch) (model.User, error)
	Delete(ctx context.Context, id string) error
}

// EventCatalog is the backend's events collection.
type EventCatalog interface {
	List(ctx context.Context) ([]model.Event, error)
	Get(ctx context.Context, id string) (model.Event, error)
	Create(ctx context.Context, event model.Event) (model.Event, error)
	Patch(ctx context.Context, id string, patch model.EventPatch) (model.Event, error)
	Delete(ctx context.Context, id string) error
}
