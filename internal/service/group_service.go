package service

import (
	"context"
	"strings"

	"foodieframe_client/internal/api"
	"foodieframe_client/internal/model"
	"foodieframe_client/internal/session"
	"foodieframe_client/internal/util"
)

// GroupService wraps the recipe-group resource; membership mutations act as
// the session user.
type GroupService struct {
	API      *api.Client
	Sessions *session.Store
}

func NewGroupService(apiClient *api.Client, sessions *session.Store) *GroupService {
	return &GroupService{API: apiClient, Sessions: sessions}
}

func (s *GroupService) List(ctx context.Context) ([]model.RecipeGroup, error) {
	return s.API.Groups.List(ctx)
}

func (s *GroupService) Public(ctx context.Context) ([]model.RecipeGroup, error) {
	return s.API.Groups.Public(ctx)
}

func (s *GroupService) Get(ctx context.Context, groupID int64) (model.RecipeGroup, error) {
	return s.API.Groups.Get(ctx, groupID)
}

func (s *GroupService) Search(ctx context.Context, query string) ([]model.RecipeGroup, error) {
	return s.API.Groups.Search(ctx, query)
}

func (s *GroupService) Members(ctx context.Context, groupID int64) ([]model.GroupMember, error) {
	return s.API.Groups.ActiveMembers(ctx, groupID)
}

func (s *GroupService) MemberCount(ctx context.Context, groupID int64) (int64, error) {
	return s.API.Groups.MemberCount(ctx, groupID)
}

// Mine lists the session user's memberships.
func (s *GroupService) Mine(ctx context.Context) ([]model.GroupMember, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return nil, util.ErrNoSession
	}
	return s.API.Groups.Memberships(ctx, sess.User.ID)
}

// Create stamps the session user as creator. New groups default to PUBLIC
// unless the caller set a privacy.
func (s *GroupService) Create(ctx context.Context, group model.RecipeGroup) (model.RecipeGroup, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return model.RecipeGroup{}, util.ErrNoSession
	}
	if strings.TrimSpace(group.Name) == "" {
		return model.RecipeGroup{}, util.ErrNameRequired
	}
	group.CreatorID = sess.User.ID
	if group.Privacy == "" {
		group.Privacy = model.GroupPublic
	}
	return s.API.Groups.Create(ctx, group)
}

func (s *GroupService) Join(ctx context.Context, groupID int64) (model.GroupMember, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return model.GroupMember{}, util.ErrNoSession
	}
	return s.API.Groups.AddMember(ctx, groupID, sess.User.ID)
}

func (s *GroupService) Leave(ctx context.Context, groupID int64) error {
	sess := s.Sessions.Current()
	if sess == nil {
		return util.ErrNoSession
	}
	return s.API.Groups.RemoveMember(ctx, groupID, sess.User.ID)
}

// SetMemberRole promotes or demotes a member. Only group admins may do this;
// the check happens client-side before the request travels.
func (s *GroupService) SetMemberRole(ctx context.Context, groupID, userID int64, role model.MemberRole) (model.GroupMember, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return model.GroupMember{}, util.ErrNoSession
	}
	isAdmin, err := s.API.Groups.IsAdmin(ctx, groupID, sess.User.ID)
	if err != nil {
		return model.GroupMember{}, err
	}
	if !isAdmin {
		return model.GroupMember{}, util.ErrNotGroupAdmin
	}
	return s.API.Groups.SetMemberRole(ctx, groupID, userID, role)
}
