package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to create a user fails
	// because another user already holds the same username or email.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a query targets a user id that does
	// not exist in the database.
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound is returned when a query or mutation targets a
	// product id that does not exist in the database.
	ErrProductNotFound = errors.New("product not found")

	// ErrNoFieldsToUpdate is returned when a partial product update carries
	// no fields at all, making the UPDATE statement meaningless.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
