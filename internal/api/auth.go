package api

import (
	"context"
	"net/url"

	"foodieframe_client/internal/model"
)

// Auth covers login and registration. Register intentionally returns the
// created user without a token; callers log in afterwards.
type Auth struct {
	c *Client
}

func (a *Auth) Login(ctx context.Context, creds model.Credentials) (model.Session, error) {
	var sess model.Session
	if err := a.c.post(ctx, "/login", nil, creds, &sess); err != nil {
		return model.Session{}, err
	}
	return sess, nil
}

func (a *Auth) Register(ctx context.Context, user model.User) (model.User, error) {
	var created model.User
	if err := a.c.post(ctx, "/register", nil, user, &created); err != nil {
		return model.User{}, err
	}
	created.Password = ""
	return created, nil
}

// Users is the user resource.
type Users struct {
	c *Client
}

func (u *Users) Get(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	err := u.c.get(ctx, pathf("/users/%d", id), nil, &user)
	return user, err
}

func (u *Users) Update(ctx context.Context, id int64, user model.User) (model.User, error) {
	var updated model.User
	err := u.c.put(ctx, pathf("/users/%d", id), user, &updated)
	return updated, err
}

func (u *Users) Delete(ctx context.Context, id int64) error {
	return u.c.del(ctx, pathf("/users/%d", id), nil)
}

// SearchByName does the substring user search behind the friends page.
func (u *Users) SearchByName(ctx context.Context, name string) ([]model.User, error) {
	var users []model.User
	err := u.c.get(ctx, "/users/name/"+url.PathEscape(name), nil, &users)
	return users, err
}
