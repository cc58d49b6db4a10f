package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// mockTaskRepository is a mock implementation of the TaskRepository interface.
type mockTaskRepository struct {
	createFn          func(ctx context.Context, task *entity.Task) error
	findByOwnerFn     func(ctx context.Context, ownerID uint) ([]entity.Task, error)
	updateFieldsFn    func(ctx context.Context, ownerID uint, taskID string, fields map[string]any) (*entity.Task, error)
	deleteFn          func(ctx context.Context, ownerID uint, taskID string) error
	toggleCompletedFn func(ctx context.Context, ownerID uint, taskID string) (*entity.Task, error)
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, task)
	}
	return nil
}

func (m *mockTaskRepository) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Task, error) {
	if m.findByOwnerFn != nil {
		return m.findByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTaskRepository) UpdateFields(ctx context.Context, ownerID uint, taskID string, fields map[string]any) (*entity.Task, error) {
	if m.updateFieldsFn != nil {
		return m.updateFieldsFn(ctx, ownerID, taskID, fields)
	}
	return nil, usecase.ErrTaskNotFound
}

func (m *mockTaskRepository) Delete(ctx context.Context, ownerID uint, taskID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ownerID, taskID)
	}
	return usecase.ErrTaskNotFound
}

func (m *mockTaskRepository) ToggleCompleted(ctx context.Context, ownerID uint, taskID string) (*entity.Task, error) {
	if m.toggleCompletedFn != nil {
		return m.toggleCompletedFn(ctx, ownerID, taskID)
	}
	return nil, usecase.ErrTaskNotFound
}

func TestNewCachingTaskRepository_Defaults(t *testing.T) {
	t.Parallel()

	repo := NewCachingTaskRepository(nil, 0, &mockTaskRepository{}, "")

	assert.Equal(t, 5*time.Minute, repo.ttl)
	assert.Equal(t, "tasks", repo.namespace)
}

func TestCachingTaskRepository_NilClientPassthrough(t *testing.T) {
	called := false
	inner := &mockTaskRepository{
		findByOwnerFn: func(ctx context.Context, ownerID uint) ([]entity.Task, error) {
			called = true
			return []entity.Task{{ID: "a"}}, nil
		},
	}

	repo := NewCachingTaskRepository(nil, time.Minute, inner, "tasks")
	tasks, err := repo.FindByOwner(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Len(t, tasks, 1)
}

func TestCachingTaskRepository_FindByOwner_CacheHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cached := []entity.Task{{ID: "a", UserID: 1, Title: "T", Priority: entity.PriorityMedium}}
	b, err := json.Marshal(cached)
	require.NoError(t, err)

	mock.ExpectGet("tasks:user:1").SetVal(string(b))

	inner := &mockTaskRepository{
		findByOwnerFn: func(ctx context.Context, ownerID uint) ([]entity.Task, error) {
			t.Fatal("inner repository must not be hit on a cache hit")
			return nil, nil
		},
	}

	repo := NewCachingTaskRepository(rdb, time.Minute, inner, "tasks")
	tasks, err := repo.FindByOwner(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "a", tasks[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingTaskRepository_FindByOwner_CacheMissStores(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	fromDB := []entity.Task{{ID: "b", UserID: 1, Title: "T", Priority: entity.PriorityMedium}}
	b, err := json.Marshal(fromDB)
	require.NoError(t, err)

	mock.ExpectGet("tasks:user:1").RedisNil()
	mock.ExpectSet("tasks:user:1", b, time.Minute).SetVal("OK")

	inner := &mockTaskRepository{
		findByOwnerFn: func(ctx context.Context, ownerID uint) ([]entity.Task, error) {
			return fromDB, nil
		},
	}

	repo := NewCachingTaskRepository(rdb, time.Minute, inner, "tasks")
	tasks, err := repo.FindByOwner(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingTaskRepository_Create_Invalidates(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel("tasks:user:1").SetVal(1)

	created := false
	inner := &mockTaskRepository{
		createFn: func(ctx context.Context, task *entity.Task) error {
			created = true
			return nil
		},
	}

	repo := NewCachingTaskRepository(rdb, time.Minute, inner, "tasks")
	err := repo.Create(context.Background(), &entity.Task{ID: "a", UserID: 1, Title: "T"})

	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingTaskRepository_FailedMutationKeepsCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	// No Del expectation: a failed delete must not touch the cache.

	repo := NewCachingTaskRepository(rdb, time.Minute, &mockTaskRepository{}, "tasks")
	err := repo.Delete(context.Background(), 1, "ghost")

	assert.ErrorIs(t, err, usecase.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingTaskRepository_Toggle_Invalidates(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel("tasks:user:1").SetVal(1)

	inner := &mockTaskRepository{
		toggleCompletedFn: func(ctx context.Context, ownerID uint, taskID string) (*entity.Task, error) {
			return &entity.Task{ID: taskID, UserID: ownerID, Completed: true}, nil
		},
	}

	repo := NewCachingTaskRepository(rdb, time.Minute, inner, "tasks")
	task, err := repo.ToggleCompleted(context.Background(), 1, "a")

	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
