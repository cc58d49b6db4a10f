// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account. Username and email are each globally
// unique; either can be used to log in.
type User struct {
	// ID is the stable identity every task operation is scoped by.
	ID uint `gorm:"primaryKey"`

	// Username is the human-chosen handle, 3-30 characters.
	Username string `gorm:"uniqueIndex;size:30;not null"`

	// Email must belong to an allowlisted domain at registration time.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the password.
	// The plaintext is never persisted.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
