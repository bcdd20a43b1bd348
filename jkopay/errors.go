package jkopay

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("jkopay: invalid request")

// ValidationError is returned before any network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("jkopay: invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TransportError wraps a failure to complete the round trip: DNS, connection,
// timeout or context cancellation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("jkopay: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPError is a non-2xx reply from the gateway.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("jkopay: http status %d: %s", e.StatusCode, string(e.Body))
}

// ResultError is a 2xx reply whose result code reports a failure. The client
// never returns it on its own; see EntryResponse.Err and friends.
type ResultError struct {
	Result  string
	Message string
}

func (e *ResultError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("jkopay: result %s", e.Result)
	}
	return fmt.Sprintf("jkopay: result %s: %s", e.Result, e.Message)
}
