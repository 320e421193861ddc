package services

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrIDMismatch is returned when the id in the request path disagrees with
// the id carried in the body of a full update.
var ErrIDMismatch = errors.New("path id and body id do not match")

// NotFoundError names the id that was looked up so handlers can echo it.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// ConflictError reports a cross-record rule violation, e.g. a duplicate
// staff email.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ValidationError carries the field -> message map produced by a DTO's rule
// set.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string { return e.Fields.Error() }

// asValidationError wraps rule-set failures so handlers can render them as a
// field map; other errors pass through untouched.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fields validation.Errors
	if errors.As(err, &fields) {
		return &ValidationError{Fields: fields}
	}
	return err
}
