package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for callers and for the HTTP layer.
type Kind uint8

const (
	Unknown Kind = iota
	InvalidInput
	NotFound
	NotAvailable
	InsufficientInventory
	Forbidden
	Unsupported
	Transient
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case NotFound:
		return "not_found"
	case NotAvailable:
		return "not_available"
	case InsufficientInventory:
		return "insufficient_inventory"
	case Forbidden:
		return "forbidden"
	case Unsupported:
		return "unsupported"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying cause, typically a
// store or network failure surfaced as Transient.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from err, Unknown when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// HTTPStatus maps an error to the status code the handlers respond with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case InvalidInput:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case NotAvailable, InsufficientInventory:
		return http.StatusConflict
	case Forbidden:
		return http.StatusForbidden
	case Unsupported:
		return http.StatusNotImplemented
	case Transient:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
