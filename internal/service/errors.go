package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"freight-service/internal/validation"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrDateRange        = errors.New("date range exceeds one year")
	ErrMissingFile      = errors.New("missing required file")
)

// Error is an expected outcome the caller can act on. Kind is one of the
// sentinels above and selects the response status.
type Error struct {
	Kind    error
	Title   string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Title
	}
	return e.Title + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Failure is an infrastructure error. It keeps the operation title and the
// payload being processed so the boundary can log them before replying 500.
type Failure struct {
	Title   string
	Payload interface{}
	Err     error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Title, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func failure(title string, payload interface{}, err error) error {
	return &Failure{Title: title, Payload: payload, Err: err}
}

func notFound(what string) error {
	return &Error{Kind: ErrNotFound, Title: "Not found", Message: what + " not found"}
}

func conflict(message string) error {
	return &Error{Kind: ErrConflict, Title: "Conflict", Message: message}
}

func forbidden(message string) error {
	return &Error{Kind: ErrPermissionDenied, Title: "Forbidden", Message: message}
}

func unauthorized(message string) error {
	return &Error{Kind: ErrUnauthorized, Title: "Unauthorized", Message: message}
}

func missingFile(field string) error {
	return &Error{Kind: ErrMissingFile, Title: "Missing file", Message: field + " is required"}
}

func badInput(message string) error {
	return &Error{Kind: ErrInvalidInput, Title: "Invalid data", Message: message}
}

// invalid maps request and query validation errors to their kinds.
// Anything else passes through untouched.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, validation.ErrDateRange):
		return &Error{Kind: ErrDateRange, Title: "Unprocessable date range", Message: err.Error()}
	case errors.Is(err, validation.ErrInvalid), errors.Is(err, validation.ErrNoFilter):
		return &Error{Kind: ErrInvalidInput, Title: "Invalid data", Message: err.Error()}
	}
	return err
}

// storeErr translates repository errors. what names the entity in messages
// and title names the operation for infrastructure failures.
func storeErr(err error, what, title string, payload interface{}) error {
	var (
		typed *Error
		infra *Failure
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &typed), errors.As(err, &infra):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return conflict(what + " already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return conflict(what + " references a missing or used record")
	}
	return failure(title, payload, err)
}
