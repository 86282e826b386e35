package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"foodieframe_client/internal/util"
)

var (
	// ErrUnauthorized marks a 401 from any endpoint. The client clears the
	// session through the OnUnauthorized hook before returning it.
	ErrUnauthorized = errors.New("authentication failed, please log in again")

	// ErrNetwork marks a transport-level failure (connection refused, DNS,
	// timeout) where no HTTP response arrived at all.
	ErrNetwork = errors.New("network error")
)

// Backend unique-constraint names leaked through raw MySQL error text. The
// backend has no structured error codes, so the client pattern-matches the
// constraint identifiers the same way the web client always has.
const (
	emailConstraint    = "UK_6DOTKOTT2KJSP8VW4D0M25FB7"
	usernameConstraint = "UK_R43AF9AP4EDM43MMTQ01ODDJ6"
)

// Error is a normalized non-2xx response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// translateError turns a non-2xx response body into the error callers see.
// Known duplicate-key constraint text becomes the user-facing sentinel;
// everything else is passed through opaque.
func translateError(status int, body []byte) error {
	text := string(body)

	if strings.Contains(text, emailConstraint) {
		return util.ErrEmailRegistered
	}
	if strings.Contains(text, usernameConstraint) {
		return util.ErrUsernameTaken
	}

	// Spring error payloads carry the useful part under "message" or "error".
	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			text = payload.Message
		} else if payload.Err != "" {
			text = payload.Err
		}
	}

	return &Error{Status: status, Message: strings.TrimSpace(text)}
}
