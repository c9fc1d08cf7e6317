package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/validation"
)

// Error kinds. Handlers map them onto HTTP status codes; use errors.Is to test.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error is a failure that is safe to show to the client.
type Error struct {
	Kind    error
	Message string
	// Fields carries per-field problems for validation failures.
	Fields map[string]string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func invalid(msg string) error      { return newError(ErrValidation, msg) }
func unauthorized(msg string) error { return newError(ErrUnauthorized, msg) }
func forbidden(msg string) error    { return newError(ErrForbidden, msg) }
func notFound(msg string) error     { return newError(ErrNotFound, msg) }
func conflict(msg string) error     { return newError(ErrConflict, msg) }

// fromValidation turns validator output into a client error. Other errors
// pass through unchanged.
func fromValidation(err error) error {
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		return &Error{Kind: ErrValidation, Message: fe.Error(), Fields: fe}
	}
	return err
}

// ParseID parses a hex ObjectID taken from a path or query parameter.
func ParseID(raw, what string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, invalid("invalid " + what + " id")
	}
	return id, nil
}

func ensureOwner(owner, actor primitive.ObjectID, msg string) error {
	if owner != actor {
		return forbidden(msg)
	}
	return nil
}
