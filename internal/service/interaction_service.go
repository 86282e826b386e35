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

// RecipeState is the per-recipe interaction snapshot a card or detail view
// renders from.
type RecipeState struct {
	LikeCount int64
	Liked     bool
	Saved     bool
}

// InteractionService keeps RecipeState current for every recipe the caller
// has loaded, applying optimistic updates with rollback on failure. Toggles
// on one recipe are serialized through a per-recipe lock so two rapid clicks
// cannot race two in-flight requests for the same (user, recipe, type).
type InteractionService struct {
	API      *api.Client
	Sessions *session.Store

	mu     sync.Mutex
	states map[int64]*recipeEntry
}

type recipeEntry struct {
	mu    sync.Mutex
	state RecipeState
}

func NewInteractionService(apiClient *api.Client, sessions *session.Store) *InteractionService {
	return &InteractionService{
		API:      apiClient,
		Sessions: sessions,
		states:   make(map[int64]*recipeEntry),
	}
}

func (s *InteractionService) entry(recipeID int64) *recipeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.states[recipeID]
	if !ok {
		e = &recipeEntry{}
		s.states[recipeID] = e
	}
	return e
}

// Load fetches the recipe's like count, and when a session exists, the
// user's liked and saved flags concurrently. Without a session the flags
// default to false and only the count request goes out.
func (s *InteractionService) Load(ctx context.Context, recipeID int64) (RecipeState, error) {
	e := s.entry(recipeID)
	e.mu.Lock()
	defer e.mu.Unlock()

	sess := s.Sessions.Current()

	var (
		wg           sync.WaitGroup
		count        int64
		liked, saved bool
		countErr     error
		likedErr     error
		savedErr     error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		count, countErr = s.API.Interactions.Count(ctx, recipeID, model.InteractionLike)
	}()

	if sess != nil {
		userID := sess.User.ID
		wg.Add(2)
		go func() {
			defer wg.Done()
			liked, likedErr = s.API.Interactions.Check(ctx, userID, recipeID, model.InteractionLike)
		}()
		go func() {
			defer wg.Done()
			saved, savedErr = s.API.SavedRecipes.Check(ctx, userID, recipeID)
		}()
	}

	wg.Wait()

	for _, err := range []error{countErr, likedErr, savedErr} {
		if err != nil {
			return e.state, err
		}
	}

	e.state = RecipeState{LikeCount: count, Liked: liked, Saved: saved}
	return e.state, nil
}

// State returns the last known snapshot without touching the network.
func (s *InteractionService) State(recipeID int64) RecipeState {
	e := s.entry(recipeID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ToggleLike flips the like optimistically, issues the matching create or
// delete request, and rolls the snapshot back when the request fails. The
// count never drops below zero.
func (s *InteractionService) ToggleLike(ctx context.Context, recipeID int64) (RecipeState, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return RecipeState{}, util.ErrNoSession
	}

	e := s.entry(recipeID)
	e.mu.Lock()
	defer e.mu.Unlock()

	previous := e.state

	var err error
	if previous.Liked {
		e.state.Liked = false
		if e.state.LikeCount > 0 {
			e.state.LikeCount--
		}
		err = s.API.Interactions.DeleteByType(ctx, sess.User.ID, recipeID, model.InteractionLike)
	} else {
		e.state.Liked = true
		e.state.LikeCount++
		_, err = s.API.Interactions.Create(ctx, sess.User.ID, recipeID, model.InteractionLike, "")
	}

	if err != nil {
		e.state = previous
		logger.Log.Warn("toggle like failed, rolled back",
			zap.Int64("recipe_id", recipeID),
			zap.Error(err))
		return previous, err
	}

	return e.state, nil
}

// ToggleSave bookmarks or unbookmarks the recipe through the saved-recipe
// resource, optimistically with rollback. note only applies when saving.
func (s *InteractionService) ToggleSave(ctx context.Context, recipeID int64, note string) (RecipeState, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return RecipeState{}, util.ErrNoSession
	}

	e := s.entry(recipeID)
	e.mu.Lock()
	defer e.mu.Unlock()

	previous := e.state

	var err error
	if previous.Saved {
		e.state.Saved = false
		err = s.API.SavedRecipes.Remove(ctx, sess.User.ID, recipeID)
	} else {
		e.state.Saved = true
		_, err = s.API.SavedRecipes.Save(ctx, sess.User.ID, recipeID, note)
	}

	if err != nil {
		e.state = previous
		logger.Log.Warn("toggle save failed, rolled back",
			zap.Int64("recipe_id", recipeID),
			zap.Error(err))
		return previous, err
	}

	return e.state, nil
}

// IsRecipeSaved reports whether the session user bookmarked the recipe.
// Without a session the answer is false, not an error.
func (s *InteractionService) IsRecipeSaved(ctx context.Context, recipeID int64) (bool, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return false, nil
	}
	return s.API.SavedRecipes.Check(ctx, sess.User.ID, recipeID)
}

// Comments lists the recipe's COMMENT interactions.
func (s *InteractionService) Comments(ctx context.Context, recipeID int64) ([]model.Interaction, error) {
	return s.API.Interactions.ByRecipeAndType(ctx, recipeID, model.InteractionComment)
}

func (s *InteractionService) AddComment(ctx context.Context, recipeID int64, content string) (model.Interaction, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return model.Interaction{}, util.ErrNoSession
	}
	return s.API.Interactions.Create(ctx, sess.User.ID, recipeID, model.InteractionComment, content)
}

func (s *InteractionService) EditComment(ctx context.Context, commentID int64, content string) (model.Interaction, error) {
	if s.Sessions.Current() == nil {
		return model.Interaction{}, util.ErrNoSession
	}
	return s.API.Interactions.Update(ctx, commentID, content)
}

func (s *InteractionService) DeleteComment(ctx context.Context, commentID int64) error {
	if s.Sessions.Current() == nil {
		return util.ErrNoSession
	}
	return s.API.Interactions.Delete(ctx, commentID)
}
