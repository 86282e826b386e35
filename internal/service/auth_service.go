package service

import (
	"context"

	"foodieframe_client/internal/api"
	"foodieframe_client/internal/model"
	"foodieframe_client/internal/session"
	"foodieframe_client/internal/util"
	"foodieframe_client/pkg/logger"

	"go.uber.org/zap"
)

// AuthService binds the auth endpoints to the session store: login persists
// the session, logout destroys it. Registration never auto-authenticates;
// the caller logs in afterwards.
type AuthService struct {
	API      *api.Client
	Sessions *session.Store
}

func NewAuthService(apiClient *api.Client, sessions *session.Store) *AuthService {
	return &AuthService{API: apiClient, Sessions: sessions}
}

func (s *AuthService) Login(ctx context.Context, creds model.Credentials) (model.Session, error) {
	sess, err := s.API.Auth.Login(ctx, creds)
	if err != nil {
		return model.Session{}, err
	}
	if err := s.Sessions.Save(sess); err != nil {
		return model.Session{}, err
	}
	logger.Log.Info("logged in", zap.String("username", sess.User.Username))
	return sess, nil
}

func (s *AuthService) Register(ctx context.Context, user model.User) (model.User, error) {
	return s.API.Auth.Register(ctx, user)
}

func (s *AuthService) Logout() {
	s.Sessions.Clear()
	logger.Log.Info("logged out")
}

// CurrentUser returns the logged-in user, or nil.
func (s *AuthService) CurrentUser() *model.User {
	sess := s.Sessions.Current()
	if sess == nil {
		return nil
	}
	user := sess.User
	return &user
}

func (s *AuthService) UpdateProfile(ctx context.Context, user model.User) (model.User, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return model.User{}, util.ErrNoSession
	}

	updated, err := s.API.Users.Update(ctx, sess.User.ID, user)
	if err != nil {
		return model.User{}, err
	}

	// Keep the persisted session in step with the profile, token included.
	sess.User = updated
	if err := s.Sessions.Save(*sess); err != nil {
		return model.User{}, err
	}
	return updated, nil
}
