package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound marks a referenced event/category/participant that the backend
// does not know about.
var ErrNotFound = errors.New("resource not found upstream")

// RemoteError is any network or backend failure. Message carries the
// backend-supplied human-readable text when one was present; callers fall
// back to a generic message otherwise.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.StatusCode == 0 {
		return "could not reach the backend"
	}
	return fmt.Sprintf("backend request failed with status %d", e.StatusCode)
}

// AuthFailure reports whether the failure should push the client back to the
// relevant login screen.
func (e *RemoteError) AuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsAuthFailure is a convenience wrapper for errors.As plus AuthFailure.
func IsAuthFailure(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.AuthFailure()
}
