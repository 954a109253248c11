// Package apperr carries the error vocabulary shared by usecases and the
// HTTP layer. Every failure a caller can act on is tagged with a Kind so
// handlers can map it to a status without string matching.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindStorage    Kind = "STORAGE"
	KindNotFound   Kind = "NOT_FOUND"
	KindNoContent  Kind = "NO_CONTENT"
	KindService    Kind = "SERVICE"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func Storage(message string, err error) error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

func NotFound(resource, id string) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found: %s", resource, id)}
}

func NoContent(message string) error {
	return &Error{Kind: KindNoContent, Message: message}
}

func Service(message string, err error) error {
	return &Error{Kind: KindService, Message: message, Err: err}
}

// KindOf returns the Kind of err, or "" if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Message returns the human-readable message without the wrapped cause,
// suitable for API responses.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
