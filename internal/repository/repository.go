// Package repository contains data access layer abstractions.
// Implementations live in subpackages (mongodb) and contain no business logic.
package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup by key matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

// Sort orders a listing by a single field.
type Sort struct {
	Field      string
	Descending bool
}
