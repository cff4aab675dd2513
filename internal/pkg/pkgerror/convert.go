package pkgerror

import (
	"context"
	"errors"
	"net/http"
)

// StatusClientClosedRequest is the non-standard status used when the client
// went away before the response was ready.
const StatusClientClosedRequest = 499

// FromError converts any error into an Error.
//
// An *Error anywhere in the chain is returned as is. Known sentinels map to
// their own status; everything else becomes a 500 with MsgInternal and err
// kept as the logged cause.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return New(http.StatusNotFound, ErrNotFound.Error(), err)
	case errors.Is(err, context.DeadlineExceeded):
		return New(http.StatusGatewayTimeout, "the request timed out", err)
	case errors.Is(err, context.Canceled):
		return New(StatusClientClosedRequest, "the request was canceled", err)
	default:
		return NewServer(err)
	}
}

// NewServer creates a 500 error with the generic public message.
func NewServer(err error) *Error {
	return New(http.StatusInternalServerError, MsgInternal, err)
}

// NewNotFound creates a 404 error with msg as the public message.
func NewNotFound(msg string) *Error {
	return New(http.StatusNotFound, msg, nil)
}

// NewInvalidInput creates a 422 validation error wrapping err.
func NewInvalidInput(err error) *Error {
	return New(http.StatusUnprocessableEntity, "validation error", err)
}

// NewInvalidFormat creates a 400 error for a malformed request body.
func NewInvalidFormat() *Error {
	return New(http.StatusBadRequest, "invalid request body", nil)
}
