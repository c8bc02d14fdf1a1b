package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a state change was attempted against a stale
// expected state. Callers should re-read the resource and retry.
var ErrConflict = errors.New("state conflict")

// ErrForbidden indicates the caller lacks the authority for the operation.
var ErrForbidden = errors.New("forbidden")
