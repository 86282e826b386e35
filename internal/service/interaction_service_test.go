package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"foodieframe_client/internal/model"
	"foodieframe_client/internal/util"

	"github.com/gin-gonic/gin"
)

// fakeRecipeBackend mimics the interaction and saved-recipe endpoints for
// one recipe and user id 1.
type fakeRecipeBackend struct {
	mu        sync.Mutex
	likeCount int64
	liked     bool
	saved     bool
	failNext  bool
	requests  int
}

func (f *fakeRecipeBackend) router() *gin.Engine {
	router := newTestRouter()
	router.Use(func(c *gin.Context) {
		f.mu.Lock()
		f.requests++
		fail := f.failNext
		f.failNext = false
		f.mu.Unlock()
		if fail {
			c.AbortWithStatus(http.StatusInternalServerError)
		}
	})

	router.GET("/interactions/recipes/:id/type/LIKE/count", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		c.String(http.StatusOK, strconv.FormatInt(f.likeCount, 10))
	})
	router.GET("/interactions/users/1/recipes/:id/type/LIKE/check", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		c.String(http.StatusOK, strconv.FormatBool(f.liked))
	})
	router.GET("/saved-recipes/users/1/recipes/:id/check", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		c.String(http.StatusOK, strconv.FormatBool(f.saved))
	})
	router.POST("/interactions/users/1/recipes/:id", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if c.Query("type") == string(model.InteractionLike) {
			f.liked = true
			f.likeCount++
		}
		c.JSON(http.StatusOK, model.Interaction{ID: 1, UserID: 1, Type: model.InteractionType(c.Query("type"))})
	})
	router.DELETE("/interactions/users/1/recipes/:id/type/LIKE", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.liked = false
		if f.likeCount > 0 {
			f.likeCount--
		}
		c.Status(http.StatusNoContent)
	})
	router.POST("/saved-recipes/users/1/recipes/:id", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.saved = true
		c.JSON(http.StatusOK, model.SavedRecipe{ID: 1, UserID: 1, PostID: 7})
	})
	router.DELETE("/saved-recipes/users/1/recipes/:id", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.saved = false
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestToggleLikeLifecycle(t *testing.T) {
	backend := &fakeRecipeBackend{likeCount: 2}
	srv := httptest.NewServer(backend.router())
	defer srv.Close()

	store := loggedInStore(t)
	svc := NewInteractionService(testClient(srv.URL, store), store)

	state, err := svc.Load(context.Background(), 7)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.LikeCount != 2 || state.Liked {
		t.Fatalf("unexpected initial state: %+v", state)
	}

	state, err = svc.ToggleLike(context.Background(), 7)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !state.Liked || state.LikeCount != 3 {
		t.Fatalf("expected liked with count 3, got %+v", state)
	}

	state, err = svc.ToggleLike(context.Background(), 7)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if state.Liked || state.LikeCount != 2 {
		t.Fatalf("expected unliked with count 2, got %+v", state)
	}
}

func TestToggleLikeRollsBackOnFailure(t *testing.T) {
	backend := &fakeRecipeBackend{likeCount: 5}
	srv := httptest.NewServer(backend.router())
	defer srv.Close()

	store := loggedInStore(t)
	svc := NewInteractionService(testClient(srv.URL, store), store)

	before, err := svc.Load(context.Background(), 7)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	backend.mu.Lock()
	backend.failNext = true
	backend.mu.Unlock()

	if _, err := svc.ToggleLike(context.Background(), 7); err == nil {
		t.Fatalf("expected the toggle to fail")
	}

	after := svc.State(7)
	if after != before {
		t.Fatalf("state must roll back on failure: before %+v, after %+v", before, after)
	}
}

func TestLikeCountNeverNegative(t *testing.T) {
	// Server drift: the user shows as having liked while the count is 0.
	backend := &fakeRecipeBackend{likeCount: 0, liked: true}
	srv := httptest.NewServer(backend.router())
	defer srv.Close()

	store := loggedInStore(t)
	svc := NewInteractionService(testClient(srv.URL, store), store)

	if _, err := svc.Load(context.Background(), 7); err != nil {
		t.Fatalf("load: %v", err)
	}
	state, err := svc.ToggleLike(context.Background(), 7)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if state.LikeCount != 0 {
		t.Fatalf("count must floor at zero, got %d", state.LikeCount)
	}
}

func TestToggleRequiresSession(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	store := emptyStore(t)
	svc := NewInteractionService(testClient(srv.URL, store), store)
	if _, err := svc.ToggleLike(context.Background(), 7); !errors.Is(err, util.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if _, err := svc.ToggleSave(context.Background(), 7, ""); !errors.Is(err, util.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestToggleSaveLifecycle(t *testing.T) {
	backend := &fakeRecipeBackend{}
	srv := httptest.NewServer(backend.router())
	defer srv.Close()

	store := loggedInStore(t)
	svc := NewInteractionService(testClient(srv.URL, store), store)

	if _, err := svc.Load(context.Background(), 7); err != nil {
		t.Fatalf("load: %v", err)
	}

	state, err := svc.ToggleSave(context.Background(), 7, "make double batch")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !state.Saved {
		t.Fatalf("expected saved, got %+v", state)
	}

	state, err = svc.ToggleSave(context.Background(), 7, "")
	if err != nil {
		t.Fatalf("unsave: %v", err)
	}
	if state.Saved {
		t.Fatalf("expected unsaved, got %+v", state)
	}
}

func TestIsRecipeSavedWithoutSession(t *testing.T) {
	backend := &fakeRecipeBackend{}
	srv := httptest.NewServer(backend.router())
	defer srv.Close()

	store := emptyStore(t)
	svc := NewInteractionService(testClient(srv.URL, store), store)

	saved, err := svc.IsRecipeSaved(context.Background(), 7)
	if err != nil {
		t.Fatalf("expected no error without a session, got %v", err)
	}
	if saved {
		t.Fatalf("expected false without a session")
	}

	backend.mu.Lock()
	requests := backend.requests
	backend.mu.Unlock()
	if requests != 0 {
		t.Fatalf("no request may be sent without a session, saw %d", requests)
	}
}
