package pkgerror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/shandysiswandi/goscaffold/internal/pkg/pkguid"
)

var (
	// ErrNotFound indicates that the requested resource could not be found.
	ErrNotFound = errors.New("resource not found")
)

// MsgInternal is the public message of every error converted from an
// unclassified internal failure.
const MsgInternal = "an internal error occurred"

//nolint:gochecknoglobals // swapped in tests only
var ids pkguid.StringID = pkguid.NewUUID()

// Body is the wire form of an Error.
type Body struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

// Error is the structured error returned to HTTP clients.
//
// It carries a public message, an HTTP status, optional details and a unique
// id. The wrapped cause is only ever written to logs.
type Error struct {
	id      string
	status  int
	msg     string
	details any
	err     error

	once *sync.Once
}

// New creates an Error with a fresh id and empty details.
//
// status must be a client or server error (400-599); anything else is
// treated as 500. An empty msg falls back to the status text.
func New(status int, msg string, cause error) *Error {
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusInternalServerError
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = MsgInternal
	}

	return &Error{
		id:      ids.Generate(),
		status:  status,
		msg:     msg,
		details: map[string]any{},
		err:     cause,
		once:    &sync.Once{},
	}
}

// WithDetails returns a copy of e carrying details. e itself is unchanged.
func (e *Error) WithDetails(details any) *Error {
	if details == nil {
		details = map[string]any{}
	}
	cp := *e
	cp.details = details
	cp.once = &sync.Once{}
	return &cp
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.msg
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error ID: %s, Status: %d, Message: %s, Underlying Error: %v",
		e.id,
		e.status,
		e.msg,
		e.err,
	)
}

// ID returns the unique id of this error occurrence.
func (e *Error) ID() string {
	return e.id
}

// Msg returns the user-facing error message.
func (e *Error) Msg() string {
	return e.msg
}

// Details returns the structured details attached with WithDetails.
func (e *Error) Details() any {
	return e.details
}

// StatusCode returns the HTTP status of the error.
func (e *Error) StatusCode() int {
	return e.status
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// Response converts e to its HTTP status and body and logs it.
//
// The log record is emitted on the first call only; later calls return the
// same status and body silently.
func (e *Error) Response(ctx context.Context) (int, Body) {
	body := Body{ID: e.id, Message: e.msg, Details: e.details}
	e.once.Do(func() { e.log(ctx) })
	return e.status, body
}

// Write writes e as a JSON response.
func (e *Error) Write(ctx context.Context, w http.ResponseWriter) {
	status, body := e.Response(ctx)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(ctx, "failed to encode error response", "error_id", e.id, "error", err)
	}
}

func (e *Error) log(ctx context.Context) {
	attrs := []any{
		"status", e.status,
		"error_id", e.id,
		"message", e.msg,
		"details", e.details,
	}
	if e.err != nil {
		attrs = append(attrs, "description", e.err.Error())
	}

	if e.status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "server error", attrs...)
		return
	}
	slog.WarnContext(ctx, "client error", attrs...)
}
