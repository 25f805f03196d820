package client

import (
	"errors"
	"fmt"
)

// ErrUnreachable wraps transport failures: DNS, refused connections, timeouts.
var ErrUnreachable = errors.New("content api unreachable")

// StatusError is returned when the remote answered with a non-success status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// AsStatusError unwraps err into a *StatusError when it is one.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
