package fetch

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidPayload marks responses that are not valid UI payloads.
var ErrInvalidPayload = errors.New("fetch: invalid payload")

const (
	reasonInvalidPayload = "Invalid payload"
	reasonNetwork        = "Network error"
)

// Error describes a failed fetch. Reason is the short, user facing failure
// string: "HTTP <status>", "Invalid payload" or the transport error message.
type Error struct {
	Reason string
	Status int
	Err    error
}

func (e *Error) Error() string {
	return e.Reason
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Temporary reports whether retrying later could succeed.
func (e *Error) Temporary() bool {
	if errors.Is(e.Err, ErrInvalidPayload) {
		return false
	}
	return e.Status == 0 || e.Status == http.StatusTooManyRequests || e.Status >= http.StatusInternalServerError
}

func statusError(status int) *Error {
	return &Error{Reason: fmt.Sprintf("HTTP %d", status), Status: status}
}

func payloadError(status int, err error) *Error {
	if !errors.Is(err, ErrInvalidPayload) {
		err = fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return &Error{Reason: reasonInvalidPayload, Status: status, Err: err}
}

func transportError(err error) *Error {
	reason := reasonNetwork
	if err != nil && err.Error() != "" {
		reason = err.Error()
	}
	return &Error{Reason: reason, Err: err}
}

// Reason extracts the failure string from err.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var fetchErr *Error
	if errors.As(err, &fetchErr) {
		return fetchErr.Reason
	}
	return err.Error()
}
