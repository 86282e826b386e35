package api

import (
	"context"
	"net/url"
	"strconv"

	"foodieframe_client/internal/model"
)

// Events is the cooking-event resource.
type Events struct {
	c *Client
}

func (e *Events) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := e.c.get(ctx, "/events", nil, &events)
	return events, err
}

func (e *Events) Get(ctx context.Context, id int64) (model.Event, error) {
	var event model.Event
	err := e.c.get(ctx, pathf("/events/%d", id), nil, &event)
	return event, err
}

func (e *Events) ByUser(ctx context.Context, userID int64) ([]model.Event, error) {
	var events []model.Event
	err := e.c.get(ctx, pathf("/events/user/%d", userID), nil, &events)
	return events, err
}

func (e *Events) Search(ctx context.Context, query string) ([]model.Event, error) {
	var events []model.Event
	err := e.c.get(ctx, "/events/search", url.Values{"query": {query}}, &events)
	return events, err
}

func (e *Events) Create(ctx context.Context, event model.Event) (model.Event, error) {
	var created model.Event
	err := e.c.post(ctx, "/events", nil, event, &created)
	return created, err
}

func (e *Events) Update(ctx context.Context, id int64, event model.Event) (model.Event, error) {
	var updated model.Event
	err := e.c.put(ctx, pathf("/events/%d", id), event, &updated)
	return updated, err
}

func (e *Events) Delete(ctx context.Context, id int64) error {
	return e.c.del(ctx, pathf("/events/%d", id), nil)
}

// Upload creates an event with its image in one multipart request. Note the
// lower-case userId here against userID on the posts upload; the drift is the
// backend's, not ours.
func (e *Events) Upload(ctx context.Context, event model.Event, imagePath string) (model.Event, error) {
	fields := map[string]string{
		"title":       event.Title,
		"description": event.Description,
		"date":        event.Date,
		"time":        event.Time,
		"location":    event.Location,
		"userId":      strconv.FormatInt(event.UserID, 10),
	}

	var files []FileArg
	if imagePath != "" {
		files = append(files, FileArg{Field: "imageFile", Path: imagePath})
	}

	var created model.Event
	err := e.c.doMultipart(ctx, "/events/upload", fields, files, &created)
	return created, err
}
