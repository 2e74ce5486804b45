package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested memory does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a memory with the same URL was captured
	// within the store's dedup window.
	ErrDuplicate = errors.New("already captured")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable indicates the memory store cannot be reached.
	ErrStoreUnavailable = errors.New("memory store unavailable")
)
