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

// SavedDetail is a bookmark joined with its recipe, the saved-recipes page
// row.
type SavedDetail struct {
	Saved  model.SavedRecipe
	Recipe model.Recipe
}

type SavedRecipeService struct {
	API      *api.Client
	Sessions *session.Store
}

func NewSavedRecipeService(apiClient *api.Client, sessions *session.Store) *SavedRecipeService {
	return &SavedRecipeService{API: apiClient, Sessions: sessions}
}

// List returns the user's bookmarks with each recipe fetched concurrently.
// A bookmark whose recipe has since been deleted keeps a zero Recipe.
func (s *SavedRecipeService) List(ctx context.Context) ([]SavedDetail, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return nil, util.ErrNoSession
	}

	saved, err := s.API.SavedRecipes.ByUser(ctx, sess.User.ID)
	if err != nil {
		return nil, err
	}

	details := make([]SavedDetail, len(saved))
	var wg sync.WaitGroup
	for idx, record := range saved {
		details[idx].Saved = record
		wg.Add(1)
		go func(idx int, postID int64) {
			defer wg.Done()
			recipe, err := s.API.Posts.Get(ctx, postID)
			if err != nil {
				logger.Log.Warn("saved recipe fetch failed",
					zap.Int64("post_id", postID),
					zap.Error(err))
				return
			}
			details[idx].Recipe = recipe
		}(idx, record.PostID)
	}
	wg.Wait()
	return details, nil
}

func (s *SavedRecipeService) UpdateNote(ctx context.Context, recipeID int64, note string) (model.SavedRecipe, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return model.SavedRecipe{}, util.ErrNoSession
	}
	return s.API.SavedRecipes.UpdateNote(ctx, sess.User.ID, recipeID, note)
}

func (s *SavedRecipeService) Remove(ctx context.Context, recipeID int64) error {
	sess := s.Sessions.Current()
	if sess == nil {
		return util.ErrNoSession
	}
	return s.API.SavedRecipes.Remove(ctx, sess.User.ID, recipeID)
}
