package usecase

import (
	"context"

	"task_backend/internal/feature/tasks/domain/entity"
)

// TaskRepository abstracts the persistence layer for task entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
//
// Every method takes the owner's identity and must scope the operation to it
// at the storage level, so a task that exists under another owner behaves
// exactly like a task that does not exist.
type TaskRepository interface {
	// Create persists a new task.
	Create(ctx context.Context, task *entity.Task) error

	// FindByOwner retrieves all tasks belonging to ownerID in insertion order.
	FindByOwner(ctx context.Context, ownerID uint) ([]entity.Task, error)

	// UpdateFields applies the given column values to the owner's task in a
	// single atomic update and returns the updated task.
	// Returns ErrTaskNotFound when no task matches within the owner's scope.
	UpdateFields(ctx context.Context, ownerID uint, taskID string, fields map[string]any) (*entity.Task, error)

	// Delete permanently removes the owner's task.
	// Returns ErrTaskNotFound when no task matches within the owner's scope.
	Delete(ctx context.Context, ownerID uint, taskID string) error

	// ToggleCompleted atomically flips the completed flag of the owner's task
	// and returns the updated task.
	// Returns ErrTaskNotFound when no task matches within the owner's scope.
	ToggleCompleted(ctx context.Context, ownerID uint, taskID string) (*entity.Task, error)
}
