package api

import (
	"context"

	"foodieframe_client/internal/model"
)

// Comments is the dedicated comment resource used by event pages. Recipe
// comments still flow through COMMENT interactions.
type Comments struct {
	c *Client
}

func (cm *Comments) List(ctx context.Context) ([]model.Comment, error) {
	var comments []model.Comment
	err := cm.c.get(ctx, "/comments", nil, &comments)
	return comments, err
}

func (cm *Comments) Get(ctx context.Context, id int64) (model.Comment, error) {
	var comment model.Comment
	err := cm.c.get(ctx, pathf("/comments/%d", id), nil, &comment)
	return comment, err
}

func (cm *Comments) ByUser(ctx context.Context, userID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := cm.c.get(ctx, pathf("/comments/user/%d", userID), nil, &comments)
	return comments, err
}

func (cm *Comments) ByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := cm.c.get(ctx, pathf("/comments/post/%d", postID), nil, &comments)
	return comments, err
}

func (cm *Comments) ByEvent(ctx context.Context, eventID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := cm.c.get(ctx, pathf("/comments/event/%d", eventID), nil, &comments)
	return comments, err
}

func (cm *Comments) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	var created model.Comment
	err := cm.c.post(ctx, "/comments", nil, comment, &created)
	return created, err
}

func (cm *Comments) Update(ctx context.Context, id int64, comment model.Comment) (model.Comment, error) {
	var updated model.Comment
	err := cm.c.put(ctx, pathf("/comments/%d", id), comment, &updated)
	return updated, err
}

func (cm *Comments) Delete(ctx context.Context, id int64) error {
	return cm.c.del(ctx, pathf("/comments/%d", id), nil)
}

// Maintenance exposes the operational endpoints: upload health and orphaned
// file cleanup.
type Maintenance struct {
	c *Client
}

// UploadStatus reports whether the upload host is reachable and writable.
func (m *Maintenance) UploadStatus(ctx context.Context) (map[string]any, error) {
	var status map[string]any
	err := m.c.get(ctx, "/uploads/status", nil, &status)
	return status, err
}

// CleanOrphanedFiles removes uploaded media no post references anymore.
func (m *Maintenance) CleanOrphanedFiles(ctx context.Context) error {
	return m.c.del(ctx, "/maintenance/files/orphaned", nil)
}

// DeletePostFiles removes the media belonging to one post.
func (m *Maintenance) DeletePostFiles(ctx context.Context, postID int64) error {
	return m.c.del(ctx, pathf("/maintenance/files/%d", postID), nil)
}
