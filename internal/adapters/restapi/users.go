package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/domain/model"
	"github.com/target/eventshell/internal/ports"
)

// UserDirectory implements ports.UserDirectory over the /users collection.
type UserDirectory struct {
	c *Client
}

var _ ports.UserDirectory = (*UserDirectory)(nil)

func (d *UserDirectory) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := d.c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (d *UserDirectory) Get(ctx context.Context, id string) (model.User, error) {
	var user model.User
	if err := d.c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (d *UserDirectory) FindByEmail(ctx context.Context, email string) ([]model.User, error) {
	return d.filter(ctx, "email", email)
}

func (d *UserDirectory) FindByRole(ctx context.Context, role auth.Role) ([]model.User, error) {
	return d.filter(ctx, "role", string(role))
}

func (d *UserDirectory) filter(ctx context.Context, field, value string) ([]model.User, error) {
	q := url.Values{}
	q.Set(field, value)
	var users []model.User
	if err := d.c.do(ctx, http.MethodGet, "/users?"+q.Encode(), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (d *UserDirectory) Create(ctx context.Context, user model.User) (model.User, error) {
	var created model.User
	if err := d.c.do(ctx, http.MethodPost, "/users", user, &created); err != nil {
		return model.User{}, err
	}
	return created, nil
}

func (d *UserDirectory) Patch(ctx context.Context, id string, patch model.UserPatch) (model.User, error) {
	var updated model.User
	if err := d.c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(id), patch, &updated); err != nil {
		return model.User{}, err
	}
	return updated, nil
}

func (d *UserDirectory) Delete(ctx context.Context, id string) error {
	return d.c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
}
