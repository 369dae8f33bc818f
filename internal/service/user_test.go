package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/domain/model"
	apperrors "github.com/target/eventshell/internal/errors"
	"github.com/target/eventshell/internal/mocks"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockUserDirectory, *mocks.MockEventCatalog) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserDirectory(ctrl)
	events := mocks.NewMockEventCatalog(ctrl)
	svc := NewUserService(UserServiceOptions{Users: users, Events: events})
	return svc, users, events
}

func TestUserService_Create_HashesSecret(t *testing.T) {
	svc, users, _ := newUserService(t)
	ctx := context.Background()

	users.EXPECT().FindByEmail(ctx, "olga@x.com").Return(nil, nil)
	users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u model.User) (model.User, error) {
			assert.Equal(t, auth.HashSecret("pw1"), u.Password)
			assert.Equal(t, auth.RoleOrganizer, u.Role)
			assert.NotEmpty(t, u.ID)
			return u, nil
		})

	_, err := svc.Create(ctx, CreateUserInput{
		Name: "Olga", Email: "olga@x.com", Secret: "pw1", Role: auth.RoleOrganizer,
	})
	require.NoError(t, err)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc, users, _ := newUserService(t)
	ctx := context.Background()

	users.EXPECT().FindByEmail(ctx, "olga@x.com").Return([]model.User{{ID: "u1"}}, nil)

	_, err := svc.Create(ctx, CreateUserInput{
		Name: "Olga", Email: "olga@x.com", Secret: "pw1", Role: auth.RoleOrganizer,
	})
	assert.True(t, apperrors.IsConflict(err))
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	svc, _, _ := newUserService(t)

	_, err := svc.Create(context.Background(), CreateUserInput{
		Name: "Olga", Email: "olga@x.com", Secret: "pw1", Role: "king",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUserService_Update_SecretOptional(t *testing.T) {
	svc, users, _ := newUserService(t)
	ctx := context.Background()

	// Without a new secret the credential digest is untouched.
	users.EXPECT().Patch(ctx, "u1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, patch model.UserPatch) (model.User, error) {
			assert.Nil(t, patch.Password)
			assert.Equal(t, "Olga", *patch.Name)
			return model.User{ID: "u1"}, nil
		})
	_, err := svc.Update(ctx, "u1", UpdateUserInput{
		Name: "Olga", Email: "olga@x.com", Role: auth.RoleOrganizer,
	})
	require.NoError(t, err)

	// A provided secret is re-hashed.
	users.EXPECT().Patch(ctx, "u1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, patch model.UserPatch) (model.User, error) {
			require.NotNil(t, patch.Password)
			assert.Equal(t, auth.HashSecret("fresh"), *patch.Password)
			return model.User{ID: "u1"}, nil
		})
	_, err = svc.Update(ctx, "u1", UpdateUserInput{
		Name: "Olga", Email: "olga@x.com", Role: auth.RoleOrganizer, Secret: "fresh",
	})
	require.NoError(t, err)
}

func TestUserService_Delete_CascadesRegistrations(t *testing.T) {
	svc, users, events := newUserService(t)
	ctx := context.Background()

	users.EXPECT().Get(ctx, "u1").Return(model.User{ID: "u1", Email: "ana@x.com"}, nil)
	users.EXPECT().Delete(ctx, "u1").Return(nil)
	events.EXPECT().List(ctx).Return([]model.Event{
		{ID: "e1", Capacity: 3, Registered: []string{"ana@x.com", "bob@x.com"}},
		{ID: "e2", Capacity: 0, Registered: []string{"bob@x.com"}},
	}, nil)
	events.EXPECT().Patch(ctx, "e1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, patch model.EventPatch) (model.Event, error) {
			require.NotNil(t, patch.Registered)
			require.NotNil(t, patch.Capacity)
			assert.Equal(t, []string{"bob@x.com"}, *patch.Registered)
			assert.Equal(t, 4, *patch.Capacity)
			return model.Event{ID: "e1"}, nil
		})

	require.NoError(t, svc.Delete(ctx, "u1"))
}

func TestUserService_Delete_NoEmailSkipsCascade(t *testing.T) {
	svc, users, _ := newUserService(t)
	ctx := context.Background()

	users.EXPECT().Get(ctx, "u1").Return(model.User{ID: "u1"}, nil)
	users.EXPECT().Delete(ctx, "u1").Return(nil)

	require.NoError(t, svc.Delete(ctx, "u1"))
}

func TestUserService_Roles(t *testing.T) {
	svc, users, _ := newUserService(t)
	ctx := context.Background()

	users.EXPECT().List(ctx).Return([]model.User{
		{Role: auth.RoleAdmin},
		{Role: auth.RoleAdmin},
		{Role: auth.RoleGuest},
	}, nil)

	roles, err := svc.Roles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []auth.Role{auth.RoleAdmin, auth.RoleGuest, auth.RoleOrganizer}, roles)
}
