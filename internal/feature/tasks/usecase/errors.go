// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

// ErrTaskNotFound is returned by repositories when no task matches the id
// within the caller's scope. A task owned by a different user reports the
// same error, so the two cases cannot be told apart.
var ErrTaskNotFound = errors.New("task not found")
