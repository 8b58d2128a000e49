package models

import "time"

// User represents a registered account in the catalog service.
// Username and Email are globally unique; uniqueness is enforced by the
// database and surfaced to callers as a conflict error.
type User struct {
	// ID is the surrogate identifier assigned by the database.
	ID int64 `json:"id"`

	// Username is the unique account name, 3-20 characters,
	// alphanumeric plus underscore and hyphen.
	Username string `json:"username"`

	// Email is the unique contact address, validated against a
	// light-weight RFC pattern.
	Email string `json:"email"`

	// CreatedAt is the timestamp when the account was created.
	// Assigned by the database on INSERT.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
