package api

import (
	"context"

	"foodieframe_client/internal/model"
)

// Friends is the friendship resource: directional requests plus the derived
// friends/pending/sent/blocked views.
type Friends struct {
	c *Client
}

func (f *Friends) Request(ctx context.Context, userID, friendID int64) (model.Friendship, error) {
	body := map[string]int64{"userId": userID, "friendId": friendID}
	var created model.Friendship
	err := f.c.post(ctx, "/friends/request", nil, body, &created)
	return created, err
}

func (f *Friends) Accept(ctx context.Context, userID, friendID int64) (model.Friendship, error) {
	var updated model.Friendship
	err := f.c.put(ctx, pathf("/friends/users/%d/accept/%d", userID, friendID), nil, &updated)
	return updated, err
}

func (f *Friends) Reject(ctx context.Context, userID, friendID int64) error {
	return f.c.del(ctx, pathf("/friends/users/%d/reject/%d", userID, friendID), nil)
}

func (f *Friends) Remove(ctx context.Context, userID, friendID int64) error {
	return f.c.del(ctx, pathf("/friends/users/%d/remove/%d", userID, friendID), nil)
}

func (f *Friends) Block(ctx context.Context, userID, blockedID int64) (model.Friendship, error) {
	var updated model.Friendship
	err := f.c.post(ctx, pathf("/friends/users/%d/block/%d", userID, blockedID), nil, nil, &updated)
	return updated, err
}

func (f *Friends) Unblock(ctx context.Context, userID, blockedID int64) error {
	return f.c.del(ctx, pathf("/friends/users/%d/unblock/%d", userID, blockedID), nil)
}

// List returns accepted friendships in either direction.
func (f *Friends) List(ctx context.Context, userID int64) ([]model.Friendship, error) {
	var list []model.Friendship
	err := f.c.get(ctx, pathf("/friends/users/%d", userID), nil, &list)
	return list, err
}

// Pending returns incoming requests awaiting the user's decision.
func (f *Friends) Pending(ctx context.Context, userID int64) ([]model.Friendship, error) {
	var list []model.Friendship
	err := f.c.get(ctx, pathf("/friends/users/%d/pending", userID), nil, &list)
	return list, err
}

// Sent returns the user's outgoing requests still pending.
func (f *Friends) Sent(ctx context.Context, userID int64) ([]model.Friendship, error) {
	var list []model.Friendship
	err := f.c.get(ctx, pathf("/friends/users/%d/sent", userID), nil, &list)
	return list, err
}

func (f *Friends) Blocked(ctx context.Context, userID int64) ([]model.Friendship, error) {
	var list []model.Friendship
	err := f.c.get(ctx, pathf("/friends/users/%d/blocked", userID), nil, &list)
	return list, err
}

func (f *Friends) IsFriend(ctx context.Context, userID, otherID int64) (bool, error) {
	var isFriend bool
	err := f.c.get(ctx, pathf("/friends/users/%d/is-friend/%d", userID, otherID), nil, &isFriend)
	return isFriend, err
}
