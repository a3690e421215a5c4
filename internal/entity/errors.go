package entity

import "errors"

var (
	// ErrNotFound indicates an error when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateKey indicates an error when a key uniqueness is violated
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrRetryExecution indicates a transient store failure (serialization conflict, timeout)
	ErrRetryExecution = errors.New("retry execution")

	// ErrStore wraps every failure of a store operation
	ErrStore = errors.New("store error")

	// ErrInvalidEntity indicates an entity that cannot be persisted as is
	ErrInvalidEntity = errors.New("invalid entity")
)
