package api

import (
	"context"
	"net/url"

	"foodieframe_client/internal/model"
)

// Categories is the recipe-category resource; mutation is admin-gated
// server-side.
type Categories struct {
	c *Client
}

func (cat *Categories) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := cat.c.get(ctx, "/categories", nil, &categories)
	return categories, err
}

func (cat *Categories) Get(ctx context.Context, id int64) (model.Category, error) {
	var category model.Category
	err := cat.c.get(ctx, pathf("/categories/%d", id), nil, &category)
	return category, err
}

func (cat *Categories) ByName(ctx context.Context, name string) (model.Category, error) {
	var category model.Category
	err := cat.c.get(ctx, "/categories/name/"+url.PathEscape(name), nil, &category)
	return category, err
}

func (cat *Categories) Search(ctx context.Context, query string) ([]model.Category, error) {
	var categories []model.Category
	err := cat.c.get(ctx, "/categories/search", url.Values{"query": {query}}, &categories)
	return categories, err
}

func (cat *Categories) Create(ctx context.Context, category model.Category) (model.Category, error) {
	var created model.Category
	err := cat.c.post(ctx, "/categories", nil, category, &created)
	return created, err
}

func (cat *Categories) Update(ctx context.Context, id int64, category model.Category) (model.Category, error) {
	var updated model.Category
	err := cat.c.put(ctx, pathf("/categories/%d", id), category, &updated)
	return updated, err
}

func (cat *Categories) Delete(ctx context.Context, id int64) error {
	return cat.c.del(ctx, pathf("/categories/%d", id), nil)
}
