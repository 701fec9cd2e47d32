package stubapi

import (
	"context"
	"errors"
	"fmt"

	perr "stubdemo/internal/platform/errors"
)

// HTTPError is a non-2xx answer from a stub
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	// Body holds at most the first 2KiB of the response
	Body string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// AsHTTPError extracts the *HTTPError from err, if any
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// IsNetwork reports a transport failure: nothing came back from the peer.
// A cancelled or expired caller ctx is not one
func IsNetwork(err error) bool {
	if _, ok := AsHTTPError(err); ok {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return perr.IsCode(err, perr.ErrorCodeUnavailable)
}
