// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// CachingTaskRepository decorates a TaskRepository with Redis caching of
// per-owner task lists. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository. Each mutation
// writes through to the inner repository and invalidates the owner's cached
// list, so one user's edits never serve stale data to that user while other
// users' entries stay warm.
type CachingTaskRepository struct {
	inner     usecase.TaskRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies TaskRepository.
var _ usecase.TaskRepository = (*CachingTaskRepository)(nil)

// NewCachingTaskRepository decorates a TaskRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "tasks".
func NewCachingTaskRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TaskRepository, namespace string) *CachingTaskRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "tasks"
	}
	return &CachingTaskRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ownerKey is the cache key holding an owner's full task list.
func (c *CachingTaskRepository) ownerKey(ownerID uint) string {
	return fmt.Sprintf("%s:user:%d", c.namespace, ownerID)
}

// invalidate drops the owner's cached list. Best effort: a failed delete only
// shortens the cache's usefulness, it cannot serve another owner's data.
func (c *CachingTaskRepository) invalidate(ctx context.Context, ownerID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.ownerKey(ownerID)).Err()
}

// FindByOwner retrieves the owner's tasks, checking cache first then falling
// back to the database.
func (c *CachingTaskRepository) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Task, error) {
	if c.rdb == nil {
		return c.inner.FindByOwner(ctx, ownerID)
	}

	key := c.ownerKey(ownerID)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Task
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Create inserts the task and invalidates the owner's cached list.
func (c *CachingTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if err := c.inner.Create(ctx, task); err != nil {
		return err
	}
	c.invalidate(ctx, task.UserID)
	return nil
}

// UpdateFields applies the update and invalidates the owner's cached list.
func (c *CachingTaskRepository) UpdateFields(ctx context.Context, ownerID uint, taskID string, fields map[string]any) (*entity.Task, error) {
	task, err := c.inner.UpdateFields(ctx, ownerID, taskID, fields)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, ownerID)
	return task, nil
}

// Delete removes the task and invalidates the owner's cached list.
func (c *CachingTaskRepository) Delete(ctx context.Context, ownerID uint, taskID string) error {
	if err := c.inner.Delete(ctx, ownerID, taskID); err != nil {
		return err
	}
	c.invalidate(ctx, ownerID)
	return nil
}

// ToggleCompleted flips the task and invalidates the owner's cached list.
func (c *CachingTaskRepository) ToggleCompleted(ctx context.Context, ownerID uint, taskID string) (*entity.Task, error) {
	task, err := c.inner.ToggleCompleted(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, ownerID)
	return task, nil
}
