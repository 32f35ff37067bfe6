// Package apperr carries the error kinds the API distinguishes. Handlers map
// a kind to an HTTP status; everything without a kind is a storage or
// programming fault and surfaces as 500.
package apperr

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindNotFound
	KindPreconditionFailed
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindPreconditionFailed:
		return "precondition_failed"
	case KindStorage:
		return "storage_fault"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	// Details lists the offending fields when a whole-record message is not
	// enough for the client to act, e.g. the incomplete-address gate.
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func NewDetailed(kind Kind, msg string, details []string) error {
	return &Error{Kind: kind, Msg: msg, Details: details}
}

// DetailsOf returns the details attached to err, if any.
func DetailsOf(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}

// Wrap attaches a kind and message to an underlying cause. The cause keeps
// its stack via pkg/errors so storage faults stay diagnosable.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Err: errors.WithStack(err)}
}

// Message returns the kind-level message without the wrapped cause, so
// driver errors never leak into responses.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}

// KindOf extracts the kind of err, walking wrapped causes.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// HTTPStatus maps an error to the status code the frontend expects.
// PreconditionFailed deliberately stays a 400 (the original clients branch on
// it); the machine-readable kind travels in the response body instead.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidArgument, KindPreconditionFailed:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
