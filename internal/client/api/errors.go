package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates no response was received at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized indicates the server answered 401; by the time the
	// caller sees it the session has already been invalidated.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError carries a non-401 HTTP error response. Message is the
// server-supplied text, empty when the body carried none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}
