package service

import (
	"context"
	"strings"
	"time"

	"foodieframe_client/internal/api"
	"foodieframe_client/internal/config"
	"foodieframe_client/internal/media"
	"foodieframe_client/internal/model"
	"foodieframe_client/internal/session"
	"foodieframe_client/internal/util"
	"foodieframe_client/pkg/logger"
	"foodieframe_client/pkg/monitoring"

	"go.uber.org/zap"
)

// RecipeService wraps the post resource with the client-side policies the
// pages relied on: form validation before the request, ownership checks
// before mutation, bounded backoff on the initial listing, and media
// inspection before uploads.
type RecipeService struct {
	API      *api.Client
	Sessions *session.Store
	Retry    config.RetryConfig

	// sleep is swapped out in tests; the default is a real clock.
	sleep func(time.Duration)
}

func NewRecipeService(apiClient *api.Client, sessions *session.Store, retry config.RetryConfig) *RecipeService {
	if retry.MaxAttempts <= 0 {
		retry.MaxAttempts = 3
	}
	if retry.BackoffBase <= 0 {
		retry.BackoffBase = time.Second
	}
	return &RecipeService{
		API:      apiClient,
		Sessions: sessions,
		Retry:    retry,
		sleep:    time.Sleep,
	}
}

// List fetches the recipe listing, retrying up to MaxAttempts times with
// 2^n backoff on failure. After the final attempt the error surfaces as-is;
// there is no further automatic retry.
func (s *RecipeService) List(ctx context.Context) ([]model.Recipe, error) {
	var lastErr error
	for attempt := 0; attempt < s.Retry.MaxAttempts; attempt++ {
		if attempt > 0 {
			backoff := s.Retry.BackoffBase * (1 << (attempt - 1))
			logger.Log.Info("retrying recipe list",
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", backoff))
			monitoring.RetryCounter.WithLabelValues("recipe_list").Inc()
			s.sleep(backoff)
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		recipes, err := s.API.Posts.List(ctx)
		if err == nil {
			return recipes, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *RecipeService) Get(ctx context.Context, id int64) (model.Recipe, error) {
	return s.API.Posts.Get(ctx, id)
}

func (s *RecipeService) Mine(ctx context.Context) ([]model.Recipe, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return nil, util.ErrNoSession
	}
	return s.API.Posts.ByUser(ctx, sess.User.ID)
}

// Validate applies the form rules the create and edit pages enforced before
// submitting.
func Validate(recipe model.Recipe) error {
	if strings.TrimSpace(recipe.Title) == "" {
		return util.ErrTitleRequired
	}
	if len(strings.TrimSpace(recipe.Description)) < 10 {
		return util.ErrDescriptionShort
	}
	return nil
}

func (s *RecipeService) Create(ctx context.Context, recipe model.Recipe) (model.Recipe, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return model.Recipe{}, util.ErrNoSession
	}
	if err := Validate(recipe); err != nil {
		return model.Recipe{}, err
	}
	recipe.UserID = sess.User.ID
	return s.API.Posts.Create(ctx, recipe)
}

// CreateWithMedia uploads the recipe and its files in one multipart request.
// A video is probed first; oversized or unreadable files fail locally before
// any bytes travel.
func (s *RecipeService) CreateWithMedia(ctx context.Context, recipe model.Recipe, imagePath, videoPath string) (model.Recipe, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return model.Recipe{}, util.ErrNoSession
	}
	if err := Validate(recipe); err != nil {
		return model.Recipe{}, err
	}

	if videoPath != "" {
		report, err := media.AnalyzeVideo(videoPath)
		if err != nil {
			return model.Recipe{}, err
		}
		if report.Suggestion != "" {
			logger.Log.Info("video could be optimized",
				zap.String("path", videoPath),
				zap.String("suggestion", report.Suggestion))
		}
	}

	recipe.UserID = sess.User.ID
	return s.API.Posts.Upload(ctx, recipe, imagePath, videoPath)
}

// Update rejects edits to recipes the session user does not own. The backend
// enforces nothing here, so the check has to happen client-side.
func (s *RecipeService) Update(ctx context.Context, id int64, recipe model.Recipe) (model.Recipe, error) {
	if err := s.requireOwnership(ctx, id); err != nil {
		return model.Recipe{}, err
	}
	if err := Validate(recipe); err != nil {
		return model.Recipe{}, err
	}
	return s.API.Posts.Update(ctx, id, recipe)
}

func (s *RecipeService) Delete(ctx context.Context, id int64) error {
	if err := s.requireOwnership(ctx, id); err != nil {
		return err
	}
	return s.API.Posts.Delete(ctx, id)
}

func (s *RecipeService) requireOwnership(ctx context.Context, id int64) error {
	sess := s.Sessions.Current()
	if sess == nil {
		return util.ErrNoSession
	}
	existing, err := s.API.Posts.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != sess.User.ID {
		return util.ErrNotOwner
	}
	return nil
}
