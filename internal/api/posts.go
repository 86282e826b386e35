package api

import (
	"context"
	"fmt"
	"strconv"

	"foodieframe_client/internal/model"
)

func pathf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Posts is the recipe resource; the backend has always called recipes posts.
type Posts struct {
	c *Client
}

func (p *Posts) List(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := p.c.get(ctx, "/posts", nil, &recipes)
	return recipes, err
}

func (p *Posts) Get(ctx context.Context, id int64) (model.Recipe, error) {
	var recipe model.Recipe
	err := p.c.get(ctx, pathf("/posts/%d", id), nil, &recipe)
	return recipe, err
}

func (p *Posts) ByUser(ctx context.Context, userID int64) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := p.c.get(ctx, pathf("/posts/user/%d", userID), nil, &recipes)
	return recipes, err
}

func (p *Posts) Create(ctx context.Context, recipe model.Recipe) (model.Recipe, error) {
	var created model.Recipe
	err := p.c.post(ctx, "/posts", nil, recipe, &created)
	return created, err
}

func (p *Posts) Update(ctx context.Context, id int64, recipe model.Recipe) (model.Recipe, error) {
	var updated model.Recipe
	err := p.c.put(ctx, pathf("/posts/%d", id), recipe, &updated)
	return updated, err
}

func (p *Posts) Delete(ctx context.Context, id int64) error {
	return p.c.del(ctx, pathf("/posts/%d", id), nil)
}

// Upload creates a recipe together with its media in one multipart request.
// The field set (and the userID casing) is fixed by the backend.
func (p *Posts) Upload(ctx context.Context, recipe model.Recipe, imagePath, videoPath string) (model.Recipe, error) {
	fields := map[string]string{
		"title":       recipe.Title,
		"description": recipe.Description,
		"category":    recipe.Category,
		"steps":       recipe.Steps,
		"userID":      strconv.FormatInt(recipe.UserID, 10),
	}
	if recipe.Tags != "" {
		fields["tags"] = recipe.Tags
	}

	var files []FileArg
	if imagePath != "" {
		files = append(files, FileArg{Field: "imageFile", Path: imagePath})
	}
	if videoPath != "" {
		files = append(files, FileArg{Field: "videoFile", Path: videoPath})
	}

	var created model.Recipe
	err := p.c.doMultipart(ctx, "/posts/upload", fields, files, &created)
	return created, err
}
