// Package adapters provides the repository implementations for the tasks feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// taskGorm is the GORM implementation of the TaskRepository interface.
// Ownership is enforced in every WHERE clause, so a task under another owner
// is indistinguishable from a missing one even at the SQL level.
type taskGorm struct {
	db *gorm.DB
}

// Compile-time check that taskGorm implements TaskRepository.
var _ usecase.TaskRepository = (*taskGorm)(nil)

// NewTaskGorm creates a new taskGorm backed by the given gorm.DB connection.
func NewTaskGorm(db *gorm.DB) *taskGorm {
	return &taskGorm{db: db}
}

// Create inserts the task.
func (r *taskGorm) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByOwner returns the owner's tasks in insertion order.
func (r *taskGorm) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Task, error) {
	var tasks []entity.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateFields applies the column values in one UPDATE scoped by id and
// owner, then reloads the row. The single-statement update keeps concurrent
// edits from losing writes.
func (r *taskGorm) UpdateFields(ctx context.Context, ownerID uint, taskID string, fields map[string]any) (*entity.Task, error) {
	if len(fields) > 0 {
		res := r.db.WithContext(ctx).
			Model(&entity.Task{}).
			Where("id = ? AND user_id = ?", taskID, ownerID).
			Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
	}
	return r.findOwned(ctx, ownerID, taskID)
}

// Delete removes the owner's task. A second delete of the same id reports
// not found.
func (r *taskGorm) Delete(ctx context.Context, ownerID uint, taskID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, ownerID).
		Delete(&entity.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTaskNotFound
	}
	return nil
}

// ToggleCompleted flips completed server-side so two racing toggles cannot
// read the same starting value.
func (r *taskGorm) ToggleCompleted(ctx context.Context, ownerID uint, taskID string) (*entity.Task, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Task{}).
		Where("id = ? AND user_id = ?", taskID, ownerID).
		Update("completed", gorm.Expr("NOT completed"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrTaskNotFound
	}
	return r.findOwned(ctx, ownerID, taskID)
}

// findOwned loads a task within the owner's scope.
func (r *taskGorm) findOwned(ctx context.Context, ownerID uint, taskID string) (*entity.Task, error) {
	var task entity.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, ownerID).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}
