package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStateConflict indicates a status transition to the state the resource is already in.
var ErrStateConflict = errors.New("resource already in target state")

// ErrInsufficientStock indicates a sale line item asked for more units than are in stock.
var ErrInsufficientStock = errors.New("insufficient stock")
