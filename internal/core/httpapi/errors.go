package httpapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionInvalid matches any API error with status 401 via errors.Is.
// The client has already cleared the persisted session record by the time
// a caller observes this error.
var ErrSessionInvalid = errors.New("session invalidated")

// Error is a normalized API failure: the HTTP status plus the error message
// extracted from the response body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Is supports errors.Is(err, ErrSessionInvalid) for 401 responses.
func (e *Error) Is(target error) bool {
	return target == ErrSessionInvalid && e.Status == http.StatusUnauthorized
}

// StatusCode extracts the HTTP status from an API error chain, or 0 when
// the error is not an API error (e.g. a transport failure).
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
