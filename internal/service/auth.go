package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/domain/model"
	apperrors "github.com/target/eventshell/internal/errors"
	"github.com/target/eventshell/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Sessions ports.SessionStore
	Users    ports.UserDirectory
	Logger   *slog.Logger
}

/// AuthService owns the locally cached identity: it checks credentials
// against the backend user directory, persists the identity on
// success, and re-verifies the cached record before navigations trust
// it.
type AuthService struct {
	sessions ports.SessionStore
	users    ports.UserDirectory
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		sessions: opts.Sessions,
		users:    opts.Users,
		logger:   logger,
	}
}

// Login checks the credentials against the backend and, on success,
// persists the identity (secret excluded) and returns it. A missing
// account and a digest mismatch are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, secret string) (auth.Identity, error) {
	accounts, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return auth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "look up account")
	}
	if len(accounts) == 0 || accounts[0].Password != auth.HashSecret(secret) {
		return auth.Identity{}, apperrors.Auth("invalid credentials")
	}

	ident := accounts[0].Identity()
	if saveErr := s.sessions.Save(ctx, ident); saveErr != nil {
		return auth.Identity{}, apperrors.Wrap(saveErr, apperrors.ErrCodeInternal, "persist identity")
	}
	return ident, nil
}

// Register creates an account with the default guest role, then logs
// in with the same credentials and returns the result.
func (s *AuthService) Register(ctx context.Context, name, email, secret string) (auth.Identity, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return auth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "look up account")
	}
	if len(existing) > 0 {
		return auth.Identity{}, apperrors.Auth("email already registered")
	}

	_, err = s.users.Create(ctx, model.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: auth.HashSecret(secret),
		Role:     auth.RoleGuest,
	})
	if err != nil {
		return auth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "create account")
	}

	return s.Login(ctx, email, secret)
}

// Logout purges the persisted identity. Navigation back to the login
// target is signaled by the caller (nav.Engine.Logout).
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "purge identity")
	}
	return nil
}

// CurrentUser reads the persisted record without contacting the
// backend. A record that fails the well-formedness invariant is purged
// and reported absent.
func (s *AuthService) CurrentUser(ctx context.Context) (auth.Identity, bool) {
	ident, err := s.sessions.Load(ctx)
	switch {
	case errors.Is(err, ports.ErrNoSession):
		return auth.Identity{}, false
	case errors.Is(err, ports.ErrMalformedSession):
		s.purge(ctx, "malformed identity record")
		return auth.Identity{}, false
	case err != nil:
		s.logger.ErrorContext(ctx, "read identity record failed", "error", err)
		return auth.Identity{}, false
	}

	if !ident.WellFormed() {
		s.purge(ctx, "identity record missing email or role")
		return auth.Identity{}, false
	}
	return ident, true
}

// IsAuthenticated reports whether a well-formed identity is cached.
// Like CurrentUser it is a local-only check.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.CurrentUser(ctx)
	return ok
}

// Verify re-confirms the cached identity against the backend by email.
// The session is purged and the caller treated as unauthenticated when
// the account no longer exists, its role has drifted from the cached
// one, or the backend cannot be reached (fail closed).
func (s *AuthService) Verify(ctx context.Context) (auth.Identity, bool) {
	ident, ok := s.CurrentUser(ctx)
	if !ok {
		return auth.Identity{}, false
	}

	accounts, err := s.users.FindByEmail(ctx, ident.Email)
	if err != nil {
		s.purge(ctx, "backend unreachable during re-verification")
		return auth.Identity{}, false
	}
	if len(accounts) == 0 {
		s.purge(ctx, "cached account no longer exists")
		return auth.Identity{}, false
	}
	if accounts[0].Role != ident.Role {
		s.purge(ctx, "cached role differs from backend")
		return auth.Identity{}, false
	}
	return ident, true
}

// purge drops the persisted record, logging but otherwise swallowing
// store failures. Integrity problems are handled silently; the only
// user-visible effect is the resulting navigation.
func (s *AuthService) purge(ctx context.Context, reason string) {
	s.logger.InfoContext(ctx, "purging cached identity", "reason", reason)
	if err := s.sessions.Clear(ctx); err != nil {
		s.logger.ErrorContext(ctx, "purge identity failed", "error", err)
	}
}
