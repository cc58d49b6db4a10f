package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/shared/apperr"
)

// CreateInput carries the fields of a new task.
type CreateInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
}

// UpdateInput is a partial update: each field is applied only when non-nil,
// so unspecified fields stay untouched.
type UpdateInput struct {
	Title       *string
	Description *string
	Priority    *string
	DueDate     *time.Time
	Completed   *bool
}

// taskUsecase implements the owner-scoped task operations.
type taskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase.
func NewTaskUsecase(tasks TaskRepository) *taskUsecase {
	return &taskUsecase{tasks: tasks}
}

// List returns all tasks owned by ownerID in insertion order.
func (u *taskUsecase) List(ctx context.Context, ownerID uint) ([]entity.Task, error) {
	tasks, err := u.tasks.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Internal("failed to list tasks", err)
	}
	return tasks, nil
}

// Create persists a new task owned by ownerID. Unrecognized priority values
// coerce to medium; completed always starts false.
func (u *taskUsecase) Create(ctx context.Context, ownerID uint, in CreateInput) (*entity.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validation("validation failed", "title is required")
	}

	task := &entity.Task{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    entity.NormalizePriority(in.Priority),
		DueDate:     in.DueDate,
		Completed:   false,
	}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, apperr.Internal("failed to create task", err)
	}

	return task, nil
}

// Update applies the present fields of in to the owner's task.
func (u *taskUsecase) Update(ctx context.Context, ownerID uint, taskID string, in UpdateInput) (*entity.Task, error) {
	fields := map[string]any{}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, apperr.Validation("validation failed", "title cannot be empty")
		}
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Priority != nil {
		fields["priority"] = entity.NormalizePriority(*in.Priority)
	}
	if in.DueDate != nil {
		fields["due_date"] = *in.DueDate
	}
	if in.Completed != nil {
		fields["completed"] = *in.Completed
	}

	task, err := u.tasks.UpdateFields(ctx, ownerID, taskID, fields)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, apperr.NotFound("task not found")
		}
		return nil, apperr.Internal("failed to update task", err)
	}

	return task, nil
}

// Delete permanently removes the owner's task. Deleting an already-deleted
// id reports not found, never success.
func (u *taskUsecase) Delete(ctx context.Context, ownerID uint, taskID string) error {
	if err := u.tasks.Delete(ctx, ownerID, taskID); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return apperr.NotFound("task not found")
		}
		return apperr.Internal("failed to delete task", err)
	}
	return nil
}

// ToggleComplete flips the completed flag of the owner's task.
func (u *taskUsecase) ToggleComplete(ctx context.Context, ownerID uint, taskID string) (*entity.Task, error) {
	task, err := u.tasks.ToggleCompleted(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, apperr.NotFound("task not found")
		}
		return nil, apperr.Internal("failed to toggle task", err)
	}
	return task, nil
}
