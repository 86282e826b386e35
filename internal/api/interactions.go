package api

import (
	"context"
	"net/url"

	"foodieframe_client/internal/model"
)

// Interactions is the typed like/favorite/comment resource keyed by
// (user, recipe, type).
type Interactions struct {
	c *Client
}

// Create records an interaction. content is only meaningful for COMMENT and
// travels as a plain string body.
func (i *Interactions) Create(ctx context.Context, userID, recipeID int64, typ model.InteractionType, content string) (model.Interaction, error) {
	var body any
	if content != "" {
		body = content
	}
	var created model.Interaction
	err := i.c.post(ctx,
		pathf("/interactions/users/%d/recipes/%d", userID, recipeID),
		url.Values{"type": {string(typ)}},
		body, &created)
	return created, err
}

func (i *Interactions) ByRecipe(ctx context.Context, recipeID int64) ([]model.Interaction, error) {
	var list []model.Interaction
	err := i.c.get(ctx, pathf("/interactions/recipes/%d", recipeID), nil, &list)
	return list, err
}

func (i *Interactions) ByRecipeAndType(ctx context.Context, recipeID int64, typ model.InteractionType) ([]model.Interaction, error) {
	var list []model.Interaction
	err := i.c.get(ctx, pathf("/interactions/recipes/%d/type/%s", recipeID, typ), nil, &list)
	return list, err
}

func (i *Interactions) ByUserAndType(ctx context.Context, userID int64, typ model.InteractionType) ([]model.Interaction, error) {
	var list []model.Interaction
	err := i.c.get(ctx, pathf("/interactions/users/%d/type/%s", userID, typ), nil, &list)
	return list, err
}

// Count returns how many interactions of typ a recipe has. The backend
// answers with a bare number.
func (i *Interactions) Count(ctx context.Context, recipeID int64, typ model.InteractionType) (int64, error) {
	var count int64
	err := i.c.get(ctx, pathf("/interactions/recipes/%d/type/%s/count", recipeID, typ), nil, &count)
	return count, err
}

// Check reports whether the user has an interaction of typ on the recipe.
func (i *Interactions) Check(ctx context.Context, userID, recipeID int64, typ model.InteractionType) (bool, error) {
	var exists bool
	err := i.c.get(ctx, pathf("/interactions/users/%d/recipes/%d/type/%s/check", userID, recipeID, typ), nil, &exists)
	return exists, err
}

func (i *Interactions) Update(ctx context.Context, interactionID int64, content string) (model.Interaction, error) {
	var updated model.Interaction
	err := i.c.put(ctx, pathf("/interactions/%d", interactionID), content, &updated)
	return updated, err
}

func (i *Interactions) Delete(ctx context.Context, interactionID int64) error {
	return i.c.del(ctx, pathf("/interactions/%d", interactionID), nil)
}

// DeleteByType removes the user's interaction of typ on the recipe; this is
// how likes are taken back.
func (i *Interactions) DeleteByType(ctx context.Context, userID, recipeID int64, typ model.InteractionType) error {
	return i.c.del(ctx, pathf("/interactions/users/%d/recipes/%d/type/%s", userID, recipeID, typ), nil)
}

// DeleteAllOfType clears every interaction of typ on a recipe (owner
// moderation).
func (i *Interactions) DeleteAllOfType(ctx context.Context, recipeID int64, typ model.InteractionType) error {
	return i.c.del(ctx, pathf("/interactions/recipes/%d/type/%s", recipeID, typ), nil)
}
