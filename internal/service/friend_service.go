package service

import (
	"context"
	"sync"

	"foodieframe_client/internal/api"
	"foodieframe_client/internal/model"
	"foodieframe_client/internal/session"
	"foodieframe_client/internal/util"
	"foodieframe_client/pkg/logger"

	"go.uber.org/zap"
)

// FriendDetail pairs a friendship row with the other user's profile, the
// shape the friends page renders.
type FriendDetail struct {
	Friendship model.Friendship
	User       model.User
}

// FriendService assembles the three friendship views (friends, pending,
// sent) and hydrates each row with the counterpart's profile, fetched
// concurrently the way the page fanned out its detail requests.
type FriendService struct {
	API      *api.Client
	Sessions *session.Store
}

func NewFriendService(apiClient *api.Client, sessions *session.Store) *FriendService {
	return &FriendService{API: apiClient, Sessions: sessions}
}

func (s *FriendService) Friends(ctx context.Context) ([]FriendDetail, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return nil, util.ErrNoSession
	}
	list, err := s.API.Friends.List(ctx, sess.User.ID)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, list, func(f model.Friendship) int64 {
		return f.OtherUser(sess.User.ID)
	})
}

func (s *FriendService) Pending(ctx context.Context) ([]FriendDetail, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return nil, util.ErrNoSession
	}
	list, err := s.API.Friends.Pending(ctx, sess.User.ID)
	if err != nil {
		return nil, err
	}
	// Incoming requests: the requester's profile is the interesting one.
	return s.hydrate(ctx, list, func(f model.Friendship) int64 { return f.UserID })
}

func (s *FriendService) Sent(ctx context.Context) ([]FriendDetail, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return nil, util.ErrNoSession
	}
	list, err := s.API.Friends.Sent(ctx, sess.User.ID)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, list, func(f model.Friendship) int64 { return f.FriendID })
}

// hydrate fetches user profiles for each friendship concurrently. Rows whose
// profile fetch fails keep a zero User rather than sinking the whole list.
func (s *FriendService) hydrate(ctx context.Context, list []model.Friendship, pick func(model.Friendship) int64) ([]FriendDetail, error) {
	details := make([]FriendDetail, len(list))
	var wg sync.WaitGroup
	for idx, friendship := range list {
		details[idx].Friendship = friendship
		wg.Add(1)
		go func(idx int, userID int64) {
			defer wg.Done()
			user, err := s.API.Users.Get(ctx, userID)
			if err != nil {
				logger.Log.Warn("friend detail fetch failed",
					zap.Int64("user_id", userID),
					zap.Error(err))
				return
			}
			details[idx].User = user
		}(idx, pick(friendship))
	}
	wg.Wait()
	return details, nil
}

func (s *FriendService) SendRequest(ctx context.Context, friendID int64) (model.Friendship, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return model.Friendship{}, util.ErrNoSession
	}
	return s.API.Friends.Request(ctx, sess.User.ID, friendID)
}

func (s *FriendService) Accept(ctx context.Context, friendID int64) (model.Friendship, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return model.Friendship{}, util.ErrNoSession
	}
	return s.API.Friends.Accept(ctx, sess.User.ID, friendID)
}

func (s *FriendService) Reject(ctx context.Context, friendID int64) error {
	sess := s.Sessions.Current()
	if sess == nil {
		return util.ErrNoSession
	}
	return s.API.Friends.Reject(ctx, sess.User.ID, friendID)
}

func (s *FriendService) Remove(ctx context.Context, friendID int64) error {
	sess := s.Sessions.Current()
	if sess == nil {
		return util.ErrNoSession
	}
	return s.API.Friends.Remove(ctx, sess.User.ID, friendID)
}

func (s *FriendService) Block(ctx context.Context, userID int64) (model.Friendship, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return model.Friendship{}, util.ErrNoSession
	}
	return s.API.Friends.Block(ctx, sess.User.ID, userID)
}

func (s *FriendService) Unblock(ctx context.Context, userID int64) error {
	sess := s.Sessions.Current()
	if sess == nil {
		return util.ErrNoSession
	}
	return s.API.Friends.Unblock(ctx, sess.User.ID, userID)
}

func (s *FriendService) Blocked(ctx context.Context) ([]model.Friendship, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return nil, util.ErrNoSession
	}
	return s.API.Friends.Blocked(ctx, sess.User.ID)
}

func (s *FriendService) Search(ctx context.Context, name string) ([]model.User, error) {
	return s.API.Users.SearchByName(ctx, name)
}
