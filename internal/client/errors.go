package client

import (
	"errors"
	"fmt"
)

// StatusError reports a non-2xx response from the score service.
type StatusError struct {
	Method     string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("score %s: unexpected status %d", e.Method, e.StatusCode)
	}
	return fmt.Sprintf("score %s: unexpected status %d: %s", e.Method, e.StatusCode, e.Message)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
