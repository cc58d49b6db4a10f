// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned by repositories when no user matches the
	// lookup criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned by repositories when a username or email
	// collides with an existing record.
	ErrUserExists = errors.New("username or email already exists")
)
