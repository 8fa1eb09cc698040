package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrEditWindowExpired indicates that a transaction is older than the edit window
// and can no longer be updated or deleted.
var ErrEditWindowExpired = errors.New("edit window expired")

// ErrInvalidTransfer indicates a transfer between the same account or with a non-positive amount.
var ErrInvalidTransfer = errors.New("invalid transfer")

// ErrAccountNotFound indicates that a referenced account does not exist for the user.
var ErrAccountNotFound = errors.New("account not found")

// ErrForbidden indicates the operation is not allowed on the resource (e.g. deleting a default category).
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the resource is still referenced and cannot be changed as requested.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal is returned for failures the caller cannot act on.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code and a message alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
