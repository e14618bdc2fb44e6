package domain

import "errors"

// Error kinds. Services wrap these in *Error so callers can branch with
// errors.Is while the message stays specific to the entity.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalid      = errors.New("invalid input")
)

// Error is a classified error with a human-readable detail.
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string { return e.Detail }

// Unwrap exposes the kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// Invalid builds an ErrInvalid-kind error.
func Invalid(detail string) error {
	return &Error{Kind: ErrInvalid, Detail: detail}
}
