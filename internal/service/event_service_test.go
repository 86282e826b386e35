package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodieframe_client/internal/model"
	"foodieframe_client/internal/util"

	"github.com/gin-gonic/gin"
)

func validEvent() model.Event {
	return model.Event{
		Title:       "Potluck evening",
		Description: "Bring a dish to share",
		Date:        "2026-10-01",
		Time:        "18:00:00",
		Location:    "Community hall",
	}
}

func TestValidateEvent(t *testing.T) {
	if err := ValidateEvent(validEvent()); err != nil {
		t.Fatalf("expected valid event, got %v", err)
	}

	short := validEvent()
	short.Title = "BBQ"
	short.Location = "here"
	err := ValidateEvent(short)
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if !strings.Contains(err.Error(), "title") || !strings.Contains(err.Error(), "location") {
		t.Fatalf("error must name the short fields, got %v", err)
	}
	if strings.Contains(err.Error(), "description") {
		t.Fatalf("error must not name valid fields, got %v", err)
	}
}

func TestEventCreateRequiresSession(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	store := emptyStore(t)
	svc := NewEventService(testClient(srv.URL, store), store)
	if _, err := svc.Create(context.Background(), validEvent(), ""); !errors.Is(err, util.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestEventCreateStampsOwner(t *testing.T) {
	var received model.Event
	router := newTestRouter()
	router.POST("/events", func(c *gin.Context) {
		if err := c.BindJSON(&received); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		received.ID = 11
		c.JSON(http.StatusOK, received)
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	store := loggedInStore(t)
	svc := NewEventService(testClient(srv.URL, store), store)

	created, err := svc.Create(context.Background(), validEvent(), "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 11 {
		t.Fatalf("unexpected created event: %+v", created)
	}
	if received.UserID != 1 {
		t.Fatalf("the session user must own the event, got %d", received.UserID)
	}
}

func TestEventUpdateRejectsNonOwner(t *testing.T) {
	router := newTestRouter()
	router.GET("/events/4", func(c *gin.Context) {
		c.JSON(http.StatusOK, model.Event{ID: 4, UserID: 42})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	store := loggedInStore(t)
	svc := NewEventService(testClient(srv.URL, store), store)

	if _, err := svc.Update(context.Background(), 4, validEvent()); !errors.Is(err, util.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}
