package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodieframe_client/internal/config"
	"foodieframe_client/internal/model"
	"foodieframe_client/internal/util"

	"github.com/gin-gonic/gin"
)

func TestListRetriesThenFails(t *testing.T) {
	hits := 0
	router := newTestRouter()
	router.GET("/posts", func(c *gin.Context) {
		hits++
		c.String(http.StatusInternalServerError, "boom")
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	store := emptyStore(t)
	svc := NewRecipeService(testClient(srv.URL, store), store, config.RetryConfig{
		MaxAttempts: 3,
		BackoffBase: time.Second,
	})
	var slept []time.Duration
	svc.sleep = func(d time.Duration) { slept = append(slept, d) }

	_, err := svc.List(context.Background())
	if err == nil {
		t.Fatalf("expected the final error to surface")
	}
	if hits != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", hits)
	}
	if len(slept) != 2 || slept[0] != time.Second || slept[1] != 2*time.Second {
		t.Fatalf("expected backoffs [1s 2s], got %v", slept)
	}
}

func TestListSucceedsAfterRetry(t *testing.T) {
	hits := 0
	router := newTestRouter()
	router.GET("/posts", func(c *gin.Context) {
		hits++
		if hits < 3 {
			c.String(http.StatusInternalServerError, "boom")
			return
		}
		c.JSON(http.StatusOK, []model.Recipe{{ID: 1, Title: "Ramen"}})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	store := emptyStore(t)
	svc := NewRecipeService(testClient(srv.URL, store), store, config.RetryConfig{
		MaxAttempts: 3,
		BackoffBase: time.Millisecond,
	})
	svc.sleep = func(time.Duration) {}

	recipes, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Title != "Ramen" {
		t.Fatalf("unexpected recipes: %+v", recipes)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(model.Recipe{Title: "  ", Description: "long enough text"}); !errors.Is(err, util.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if err := Validate(model.Recipe{Title: "Soup", Description: "short"}); !errors.Is(err, util.ErrDescriptionShort) {
		t.Fatalf("expected ErrDescriptionShort, got %v", err)
	}
	if err := Validate(model.Recipe{Title: "Soup", Description: "a proper description"}); err != nil {
		t.Fatalf("expected valid recipe, got %v", err)
	}
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	updates := 0
	router := newTestRouter()
	router.GET("/posts/9", func(c *gin.Context) {
		c.JSON(http.StatusOK, model.Recipe{ID: 9, UserID: 99, Title: "Not yours", Description: "someone else's recipe"})
	})
	router.PUT("/posts/9", func(c *gin.Context) {
		updates++
		c.JSON(http.StatusOK, model.Recipe{})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	store := loggedInStore(t)
	svc := NewRecipeService(testClient(srv.URL, store), store, config.RetryConfig{})

	_, err := svc.Update(context.Background(), 9, model.Recipe{Title: "Mine now", Description: "a proper description"})
	if !errors.Is(err, util.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if updates != 0 {
		t.Fatalf("the update request must never be sent, saw %d", updates)
	}

	if err := svc.Delete(context.Background(), 9); !errors.Is(err, util.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner on delete, got %v", err)
	}
}

func TestMineRequiresSession(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	store := emptyStore(t)
	svc := NewRecipeService(testClient(srv.URL, store), store, config.RetryConfig{})
	if _, err := svc.Mine(context.Background()); !errors.Is(err, util.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}
