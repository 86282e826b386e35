package api

import (
	"context"

	"foodieframe_client/internal/model"
)

// SavedRecipes is the dedicated bookmark resource that replaced FAVORITE
// interactions.
type SavedRecipes struct {
	c *Client
}

func (s *SavedRecipes) Save(ctx context.Context, userID, recipeID int64, note string) (model.SavedRecipe, error) {
	var body any
	if note != "" {
		body = map[string]string{"note": note}
	}
	var saved model.SavedRecipe
	err := s.c.post(ctx, pathf("/saved-recipes/users/%d/recipes/%d", userID, recipeID), nil, body, &saved)
	return saved, err
}

func (s *SavedRecipes) ByUser(ctx context.Context, userID int64) ([]model.SavedRecipe, error) {
	var list []model.SavedRecipe
	err := s.c.get(ctx, pathf("/saved-recipes/users/%d", userID), nil, &list)
	return list, err
}

// Check reports whether the user has saved the recipe.
func (s *SavedRecipes) Check(ctx context.Context, userID, recipeID int64) (bool, error) {
	var saved bool
	err := s.c.get(ctx, pathf("/saved-recipes/users/%d/recipes/%d/check", userID, recipeID), nil, &saved)
	return saved, err
}

func (s *SavedRecipes) Get(ctx context.Context, userID, recipeID int64) (model.SavedRecipe, error) {
	var saved model.SavedRecipe
	err := s.c.get(ctx, pathf("/saved-recipes/users/%d/recipes/%d", userID, recipeID), nil, &saved)
	return saved, err
}

func (s *SavedRecipes) UpdateNote(ctx context.Context, userID, recipeID int64, note string) (model.SavedRecipe, error) {
	var updated model.SavedRecipe
	err := s.c.put(ctx, pathf("/saved-recipes/users/%d/recipes/%d", userID, recipeID),
		map[string]string{"note": note}, &updated)
	return updated, err
}

func (s *SavedRecipes) Remove(ctx context.Context, userID, recipeID int64) error {
	return s.c.del(ctx, pathf("/saved-recipes/users/%d/recipes/%d", userID, recipeID), nil)
}

// Count returns how many users saved the recipe.
func (s *SavedRecipes) Count(ctx context.Context, recipeID int64) (int64, error) {
	var count int64
	err := s.c.get(ctx, pathf("/saved-recipes/recipes/%d/count", recipeID), nil, &count)
	return count, err
}
