// Package repository contains the repository interfaces and related errors.
package repository

import "errors"

// Repository errors define common error conditions across all repositories.
// These errors are used to communicate specific failure conditions
// from the data access layer to the application layer.

var (
	// ErrProductNotFound is returned when a product cannot be found by ID or SKU.
	ErrProductNotFound = errors.New("product not found")

	// ErrModuleNotFound is returned when a placed module cannot be found by ID.
	ErrModuleNotFound = errors.New("placed module not found")

	// ErrDesignNotFound is returned when a design has no persisted state.
	ErrDesignNotFound = errors.New("design not found")

	// ErrDuplicateSKU is returned when trying to create a product with
	// a SKU that already exists.
	ErrDuplicateSKU = errors.New("SKU already exists")

	// ErrOptimisticLock is returned when an update fails due to
	// a version mismatch (concurrent modification).
	ErrOptimisticLock = errors.New("optimistic lock conflict: record was modified by another transaction")

	// ErrInvalidInput is returned when repository receives invalid input.
	ErrInvalidInput = errors.New("invalid input provided")
)

// IsNotFoundError checks if the error is a not found error.
// This is useful for handling not-found cases uniformly.
//
// Parameters:
//   - err: error to check
//
// Returns:
//   - bool: true if the error indicates a resource was not found
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrModuleNotFound) ||
		errors.Is(err, ErrDesignNotFound)
}
