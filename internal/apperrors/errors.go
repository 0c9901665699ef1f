package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting user's role is not eligible for the operation.
var ErrForbidden = errors.New("operation not permitted for role")

// ErrLocked indicates that the budget cycle is read-only or the project's
// country is past its lock date for the acting user.
var ErrLocked = errors.New("project is locked for editing")
