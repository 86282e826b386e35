package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodieframe_client/internal/model"

	"github.com/gin-gonic/gin"
)

func TestFriendsHydratesCounterparts(t *testing.T) {
	router := newTestRouter()
	router.GET("/friends/users/1", func(c *gin.Context) {
		c.JSON(http.StatusOK, []model.Friendship{
			{ID: 1, UserID: 1, FriendID: 2, Status: model.FriendshipAccepted},
			{ID: 2, UserID: 3, FriendID: 1, Status: model.FriendshipAccepted},
		})
	})
	router.GET("/users/:id", func(c *gin.Context) {
		id := c.Param("id")
		if id == "3" {
			// One profile fetch failing must not sink the list.
			c.String(http.StatusInternalServerError, "boom")
			return
		}
		c.JSON(http.StatusOK, model.User{ID: 2, Username: fmt.Sprintf("user%s", id)})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	store := loggedInStore(t)
	svc := NewFriendService(testClient(srv.URL, store), store)

	details, err := svc.Friends(context.Background())
	if err != nil {
		t.Fatalf("friends: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(details))
	}
	if details[0].User.Username != "user2" {
		t.Fatalf("expected the counterpart profile, got %+v", details[0].User)
	}
	if details[1].User.ID != 0 {
		t.Fatalf("failed profile fetch must leave a zero user, got %+v", details[1].User)
	}
	if details[1].Friendship.ID != 2 {
		t.Fatalf("friendship row must survive the failed fetch")
	}
}

func TestPendingHydratesRequester(t *testing.T) {
	var requestedUser string
	router := newTestRouter()
	router.GET("/friends/users/1/pending", func(c *gin.Context) {
		c.JSON(http.StatusOK, []model.Friendship{
			{ID: 5, UserID: 9, FriendID: 1, Status: model.FriendshipPending},
		})
	})
	router.GET("/users/:id", func(c *gin.Context) {
		requestedUser = c.Param("id")
		c.JSON(http.StatusOK, model.User{ID: 9, Username: "requester"})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	store := loggedInStore(t)
	svc := NewFriendService(testClient(srv.URL, store), store)

	details, err := svc.Pending(context.Background())
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(details) != 1 || details[0].User.Username != "requester" {
		t.Fatalf("unexpected details: %+v", details)
	}
	if requestedUser != "9" {
		t.Fatalf("pending rows must hydrate the requester, fetched user %s", requestedUser)
	}
}
