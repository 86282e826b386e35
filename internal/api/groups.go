package api

import (
	"context"
	"net/url"

	"foodieframe_client/internal/model"
)

// Groups is the recipe-group resource including membership management.
type Groups struct {
	c *Client
}

func (g *Groups) List(ctx context.Context) ([]model.RecipeGroup, error) {
	var groups []model.RecipeGroup
	err := g.c.get(ctx, "/recipe-groups", nil, &groups)
	return groups, err
}

func (g *Groups) Public(ctx context.Context) ([]model.RecipeGroup, error) {
	var groups []model.RecipeGroup
	err := g.c.get(ctx, "/recipe-groups/public", nil, &groups)
	return groups, err
}

func (g *Groups) Get(ctx context.Context, groupID int64) (model.RecipeGroup, error) {
	var group model.RecipeGroup
	err := g.c.get(ctx, pathf("/recipe-groups/%d", groupID), nil, &group)
	return group, err
}

func (g *Groups) ByCreator(ctx context.Context, creatorID int64) ([]model.RecipeGroup, error) {
	var groups []model.RecipeGroup
	err := g.c.get(ctx, pathf("/recipe-groups/creator/%d", creatorID), nil, &groups)
	return groups, err
}

func (g *Groups) Search(ctx context.Context, query string) ([]model.RecipeGroup, error) {
	var groups []model.RecipeGroup
	err := g.c.get(ctx, "/recipe-groups/search", url.Values{"query": {query}}, &groups)
	return groups, err
}

func (g *Groups) Create(ctx context.Context, group model.RecipeGroup) (model.RecipeGroup, error) {
	var created model.RecipeGroup
	err := g.c.post(ctx, "/recipe-groups", nil, group, &created)
	return created, err
}

func (g *Groups) Update(ctx context.Context, groupID int64, group model.RecipeGroup) (model.RecipeGroup, error) {
	var updated model.RecipeGroup
	err := g.c.put(ctx, pathf("/recipe-groups/%d", groupID), group, &updated)
	return updated, err
}

func (g *Groups) Delete(ctx context.Context, groupID int64) error {
	return g.c.del(ctx, pathf("/recipe-groups/%d", groupID), nil)
}

func (g *Groups) AddMember(ctx context.Context, groupID, userID int64) (model.GroupMember, error) {
	body := map[string]int64{"userId": userID}
	var member model.GroupMember
	err := g.c.post(ctx, pathf("/recipe-groups/%d/members", groupID), nil, body, &member)
	return member, err
}

func (g *Groups) Members(ctx context.Context, groupID int64) ([]model.GroupMember, error) {
	var members []model.GroupMember
	err := g.c.get(ctx, pathf("/recipe-groups/%d/members", groupID), nil, &members)
	return members, err
}

func (g *Groups) ActiveMembers(ctx context.Context, groupID int64) ([]model.GroupMember, error) {
	var members []model.GroupMember
	err := g.c.get(ctx, pathf("/recipe-groups/%d/members/active", groupID), nil, &members)
	return members, err
}

func (g *Groups) Admins(ctx context.Context, groupID int64) ([]model.GroupMember, error) {
	var admins []model.GroupMember
	err := g.c.get(ctx, pathf("/recipe-groups/%d/admins", groupID), nil, &admins)
	return admins, err
}

func (g *Groups) SetMemberRole(ctx context.Context, groupID, userID int64, role model.MemberRole) (model.GroupMember, error) {
	var member model.GroupMember
	err := g.c.put(ctx, pathf("/recipe-groups/%d/members/%d/role", groupID, userID),
		map[string]model.MemberRole{"role": role}, &member)
	return member, err
}

func (g *Groups) SetMemberStatus(ctx context.Context, groupID, userID int64, status model.MembershipStatus) (model.GroupMember, error) {
	var member model.GroupMember
	err := g.c.put(ctx, pathf("/recipe-groups/%d/members/%d/status", groupID, userID),
		map[string]model.MembershipStatus{"status": status}, &member)
	return member, err
}

func (g *Groups) RemoveMember(ctx context.Context, groupID, userID int64) error {
	return g.c.del(ctx, pathf("/recipe-groups/%d/members/%d", groupID, userID), nil)
}

func (g *Groups) Memberships(ctx context.Context, userID int64) ([]model.GroupMember, error) {
	var memberships []model.GroupMember
	err := g.c.get(ctx, pathf("/recipe-groups/user/%d/memberships", userID), nil, &memberships)
	return memberships, err
}

func (g *Groups) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	var isMember bool
	err := g.c.get(ctx, pathf("/recipe-groups/%d/members/%d/check", groupID, userID), nil, &isMember)
	return isMember, err
}

func (g *Groups) IsAdmin(ctx context.Context, groupID, userID int64) (bool, error) {
	var isAdmin bool
	err := g.c.get(ctx, pathf("/recipe-groups/%d/admins/%d/check", groupID, userID), nil, &isAdmin)
	return isAdmin, err
}

func (g *Groups) MemberCount(ctx context.Context, groupID int64) (int64, error) {
	var count int64
	err := g.c.get(ctx, pathf("/recipe-groups/%d/members/count", groupID), nil, &count)
	return count, err
}
