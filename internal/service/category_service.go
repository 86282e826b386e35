package service

import (
	"context"

	"foodieframe_client/internal/api"
	"foodieframe_client/internal/model"
	"foodieframe_client/internal/session"
	"foodieframe_client/internal/util"
)

// CategoryService is a thin typed pass-through; category reads are public,
// mutations require a session.
type CategoryService struct {
	API      *api.Client
	Sessions *session.Store
}

func NewCategoryService(apiClient *api.Client, sessions *session.Store) *CategoryService {
	return &CategoryService{API: apiClient, Sessions: sessions}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.API.Categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (model.Category, error) {
	return s.API.Categories.Get(ctx, id)
}

func (s *CategoryService) ByName(ctx context.Context, name string) (model.Category, error) {
	return s.API.Categories.ByName(ctx, name)
}

func (s *CategoryService) Search(ctx context.Context, query string) ([]model.Category, error) {
	return s.API.Categories.Search(ctx, query)
}

func (s *CategoryService) Create(ctx context.Context, category model.Category) (model.Category, error) {
	if s.Sessions.Current() == nil {
		return model.Category{}, util.ErrNoSession
	}
	if category.Name == "" {
		return model.Category{}, util.ErrNameRequired
	}
	return s.API.Categories.Create(ctx, category)
}

func (s *CategoryService) Update(ctx context.Context, id int64, category model.Category) (model.Category, error) {
	if s.Sessions.Current() == nil {
		return model.Category{}, util.ErrNoSession
	}
	return s.API.Categories.Update(ctx, id, category)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if s.Sessions.Current() == nil {
		return util.ErrNoSession
	}
	return s.API.Categories.Delete(ctx, id)
}
