package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrServerUnreachable = errors.New("server unreachable")
	ErrEmptyToken        = errors.New("empty token in login response")
	ErrInvalidAddress    = errors.New("invalid server address")
)

// ResponseError is a non-2xx answer of the notes API.
type ResponseError struct {
	StatusCode int
	// Message is the server-provided reason, if any.
	Message string

	kind error
}

// NewResponseError builds the error for status code with the server message msg.
func NewResponseError(code int, msg string) *ResponseError {
	return &ResponseError{StatusCode: code, Message: msg, kind: statusKind(code)}
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %v", e.StatusCode, e.kind)
	}
	return fmt.Sprintf("http %d: %v: %s", e.StatusCode, e.kind, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

// MessageFrom returns the server message carried by err, or "" when err is
// not a [*ResponseError] or the server sent none.
func MessageFrom(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message
	}
	return ""
}

func statusKind(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}
