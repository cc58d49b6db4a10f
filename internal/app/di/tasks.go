package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	taskadapters "task_backend/internal/feature/tasks/adapters"
	"task_backend/internal/feature/tasks/usecase"
	"task_backend/internal/platform/cache"
)

// NewTaskRepository creates a TaskRepository implementation.
// If Redis is available, the GORM repository is wrapped with list caching.
// Otherwise, the plain repository is returned.
func NewTaskRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.TaskRepository {
	repo := taskadapters.NewTaskGorm(db)
	if rdb != nil {
		return cache.NewCachingTaskRepository(rdb, ttl, repo, "tasks")
	}
	return repo
}
