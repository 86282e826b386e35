package service

import (
	"context"
	"errors"
	"strings"

	"foodieframe_client/internal/api"
	"foodieframe_client/internal/model"
	"foodieframe_client/internal/session"
	"foodieframe_client/internal/util"
)

// EventService wraps the event resource with the same pre-submission
// validation the event form ran; the backend rejects fields shorter than
// six characters.
type EventService struct {
	API      *api.Client
	Sessions *session.Store
}

func NewEventService(apiClient *api.Client, sessions *session.Store) *EventService {
	return &EventService{API: apiClient, Sessions: sessions}
}

func ValidateEvent(event model.Event) error {
	var problems []string
	for field, value := range map[string]string{
		"title":       event.Title,
		"description": event.Description,
		"date":        event.Date,
		"time":        event.Time,
		"location":    event.Location,
	} {
		if len(strings.TrimSpace(value)) < 6 {
			problems = append(problems, field+" must be at least 6 characters")
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.API.Events.List(ctx)
}

func (s *EventService) Get(ctx context.Context, id int64) (model.Event, error) {
	return s.API.Events.Get(ctx, id)
}

func (s *EventService) Search(ctx context.Context, query string) ([]model.Event, error) {
	return s.API.Events.Search(ctx, query)
}

func (s *EventService) Create(ctx context.Context, event model.Event, imagePath string) (model.Event, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return model.Event{}, util.ErrNoSession
	}
	if err := ValidateEvent(event); err != nil {
		return model.Event{}, err
	}
	event.UserID = sess.User.ID

	if imagePath != "" {
		return s.API.Events.Upload(ctx, event, imagePath)
	}
	return s.API.Events.Create(ctx, event)
}

func (s *EventService) Update(ctx context.Context, id int64, event model.Event) (model.Event, error) {
	if err := s.requireOwnership(ctx, id); err != nil {
		return model.Event{}, err
	}
	if err := ValidateEvent(event); err != nil {
		return model.Event{}, err
	}
	return s.API.Events.Update(ctx, id, event)
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	if err := s.requireOwnership(ctx, id); err != nil {
		return err
	}
	return s.API.Events.Delete(ctx, id)
}

// Comments lists the dedicated comment rows attached to an event.
func (s *EventService) Comments(ctx context.Context, eventID int64) ([]model.Comment, error) {
	return s.API.Comments.ByEvent(ctx, eventID)
}

func (s *EventService) AddComment(ctx context.Context, eventID int64, content string) (model.Comment, error) {
	sess := s.Sessions.Current()
	if sess == nil {
		return model.Comment{}, util.ErrNoSession
	}
	return s.API.Comments.Create(ctx, model.Comment{
		UserID:  sess.User.ID,
		EventID: eventID,
		Content: content,
	})
}

func (s *EventService) requireOwnership(ctx context.Context, id int64) error {
	sess := s.Sessions.Current()
	if sess == nil {
		return util.ErrNoSession
	}
	existing, err := s.API.Events.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != sess.User.ID {
		return util.ErrNotOwner
	}
	return nil
}
