// Package apperror defines the error taxonomy shared by usecases and handlers.
// Anything not covered by these types is treated as a store failure and masked
// at the handler boundary.
package apperror

import (
	"errors"
	"fmt"
)

// ValidationError marks input that is malformed or semantically invalid.
// It is raised before any statement reaches the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ReferenceError marks a write whose foreign reference does not resolve,
// e.g. creating a product for a supplier that does not exist.
type ReferenceError struct {
	Entity string
	ID     int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Entity, e.ID)
}

func NewReference(entity string, id int64) *ReferenceError {
	return &ReferenceError{Entity: entity, ID: id}
}

// NotFoundError marks a read for an entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func NewNotFound(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError marks a write refused because of the current state of the
// store, e.g. deleting a customer that still owns orders.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsReference(err error) bool {
	var target *ReferenceError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
