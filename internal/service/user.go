package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/domain/model"
	apperrors "github.com/target/eventshell/internal/errors"
	"github.com/target/eventshell/internal/ports"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Users  ports.UserDirectory
	Events ports.EventCatalog
	Logger *slog.Logger
}

// UserService implements account administration over the backend user
// directory, including the event-registration cascade on delete.
type UserService struct {
	users  ports.UserDirectory
	events ports.EventCatalog
	logger *slog.Logger
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		users:  opts.Users,
		events: opts.Events,
		logger: logger,
	}
}

// List returns all accounts.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Get returns one account by id.
func (s *UserService) Get(ctx context.Context, id string) (model.User, error) {
	return s.users.Get(ctx, id)
}

// Organizers returns the accounts holding the organizer role.
func (s *UserService) Organizers(ctx context.Context) ([]model.User, error) {
	return s.users.FindByRole(ctx, auth.RoleOrganizer)
}

// Roles returns the distinct roles present in the directory, always
// offering guest and organizer so a fresh install can assign them.
func (s *UserService) Roles(ctx context.Context) ([]auth.Role, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	var roles []auth.Role
	for _, u := range users {
		if !slices.Contains(roles, u.Role) {
			roles = append(roles, u.Role)
		}
	}
	for _, r := range []auth.Role{auth.RoleGuest, auth.RoleOrganizer} {
		if !slices.Contains(roles, r) {
			roles = append(roles, r)
		}
	}
	return roles, nil
}

// CreateUserInput carries the fields of the admin create-user form.
type CreateUserInput struct {
	Name   string
	Email  string
	Secret string
	Role   auth.Role
}

// Create adds an account after checking the email is unused. The
// secret is stored as its digest.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (model.User, error) {
	if strings.TrimSpace(in.Email) == "" {
		return model.User{}, apperrors.ValidationField("email", "email is required")
	}
	if !in.Role.Valid() {
		return model.User{}, apperrors.ValidationField("role", fmt.Sprintf("unknown role %q", in.Role))
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return model.User{}, err
	}
	if len(existing) > 0 {
		return model.User{}, apperrors.Conflict("this email is already registered")
	}

	return s.users.Create(ctx, model.User{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Email:    in.Email,
		Password: auth.HashSecret(in.Secret),
		Role:     in.Role,
	})
}

// UpdateUserInput carries the fields of the admin edit-user form.
// Secret is only applied when non-empty; it is re-hashed before
// storage.
type UpdateUserInput struct {
	Name   string
	Email  string
	Role   auth.Role
	Secret string
}

// Update rewrites an account's profile fields and, when a new secret
// was provided, its credential digest.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (model.User, error) {
	if !in.Role.Valid() {
		return model.User{}, apperrors.ValidationField("role", fmt.Sprintf("unknown role %q", in.Role))
	}

	patch := model.UserPatch{
		Name:  &in.Name,
		Email: &in.Email,
		Role:  &in.Role,
	}
	if secret := strings.TrimSpace(in.Secret); secret != "" {
		digest := auth.HashSecret(secret)
		patch.Password = &digest
	}
	return s.users.Patch(ctx, id, patch)
}

// Delete removes an account and cascades through the event catalog:
// every event the account's email was registered in loses that entry
// and gets its slot back.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return err
	}

	if deleteErr := s.users.Delete(ctx, id); deleteErr != nil {
		return deleteErr
	}

	if user.Email == "" {
		return nil
	}
	return s.unregisterEverywhere(ctx, user.Email)
}

// unregisterEverywhere removes the email from every event's registered
// list, incrementing capacity by one per removal. Individual patch
// failures do not stop the sweep.
func (s *UserService) unregisterEverywhere(ctx context.Context, email string) error {
	events, err := s.events.List(ctx)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "list events for cascade")
	}

	var errs []error
	for _, event := range events {
		if !event.HasGuest(email) {
			continue
		}
		remaining := slices.DeleteFunc(slices.Clone(event.Registered), func(e string) bool {
			return e == email
		})
		capacity := event.Capacity + 1
		if _, patchErr := s.events.Patch(ctx, event.ID, model.EventPatch{
			Registered: &remaining,
			Capacity:   &capacity,
		}); patchErr != nil {
			s.logger.ErrorContext(ctx, "cascade unregister failed",
				"event_id", event.ID, "error", patchErr)
			errs = append(errs, patchErr)
		}
	}
	return errors.Join(errs...)
}
