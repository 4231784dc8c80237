package model

import "errors"

// Error kinds. Every failure returned by the user service unwraps to one of them
// unless it comes from the store or the hasher.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidDocument = errors.New("invalid document")
	ErrInvalidPassword = errors.New("invalid password")
	ErrValidation      = errors.New("validation failed")
)

// Error is a domain failure with a message meant for the caller.
type Error struct {
	kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.kind
}

func NewNotFoundError(msg string) error {
	return &Error{kind: ErrNotFound, Message: msg}
}

func NewInvalidDocumentError(msg string) error {
	return &Error{kind: ErrInvalidDocument, Message: msg}
}

func NewInvalidPasswordError(msg string) error {
	return &Error{kind: ErrInvalidPassword, Message: msg}
}

func NewValidationError(msg string) error {
	return &Error{kind: ErrValidation, Message: msg}
}
