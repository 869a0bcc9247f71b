package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"tasker/internal/errors"
	"tasker/internal/model"
	"tasker/internal/repository"
)

// memTaskRepo is an in-memory TaskRepository used to exercise full task
// lifecycles and ownership isolation without a database.
type memTaskRepo struct {
	tasks map[uuid.UUID]model.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[uuid.UUID]model.Task)}
}

func (m *memTaskRepo) Create(ctx context.Context, task *model.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	m.tasks[task.ID] = *task
	return nil
}

func (m *memTaskRepo) FindByOwner(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	for _, task := range m.tasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (m *memTaskRepo) FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*model.Task, error) {
	task, ok := m.tasks[id]
	if !ok || task.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &task, nil
}

func (m *memTaskRepo) Update(ctx context.Context, task *model.Task) error {
	m.tasks[task.ID] = *task
	return nil
}

func (m *memTaskRepo) DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	task, ok := m.tasks[id]
	if !ok || task.UserID != userID {
		return 0, nil
	}
	delete(m.tasks, id)
	return 1, nil
}

func (m *memTaskRepo) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.TaskRepository) error) error {
	return fn(ctx, m)
}

// wrappedMissRepo reports misses as wrapped sentinels, the way a driver layer
// that annotates its errors would.
type wrappedMissRepo struct {
	*memTaskRepo
}

func (w wrappedMissRepo) FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*model.Task, error) {
	task, err := w.memTaskRepo.FindByIDAndOwner(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}

func (w wrappedMissRepo) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.TaskRepository) error) error {
	return fn(ctx, w)
}

func TestTaskService_CreateValidation(t *testing.T) {
	tests := []struct {
		name          string
		taskName      string
		content       string
		expectedError error
	}{
		{"empty name", "", "milk", errors.ErrEmptyField},
		{"name with digits", "sh0p", "milk", errors.ErrLettersOnly},
		{"name with spaces", "shopping list", "milk", errors.ErrLettersOnly},
		{"empty content", "shop", "", errors.ErrEmptyField},
	}

	svc := NewTaskService(newMemTaskRepo())
	owner := uuid.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := svc.Create(context.Background(), owner, tt.taskName, tt.content)
			assert.Nil(t, task)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestTaskService_Lifecycle(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())
	owner := uuid.New()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, "shop", "milk")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, owner, created.UserID)

	got, err := svc.Get(ctx, owner, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "shop", got.Name)
	assert.Equal(t, "milk", got.Content)

	edited, err := svc.Edit(ctx, owner, created.ID, "groceries", "milk and eggs")
	assert.NoError(t, err)
	assert.Equal(t, "groceries", edited.Name)

	got, err = svc.Get(ctx, owner, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "groceries", got.Name)
	assert.Equal(t, "milk and eggs", got.Content)

	removed, err := svc.Delete(ctx, owner, created.ID)
	assert.NoError(t, err)
	assert.True(t, removed)

	_, err = svc.Get(ctx, owner, created.ID)
	assert.Equal(t, errors.ErrTaskNotFound, err)

	removed, err = svc.Delete(ctx, owner, created.ID)
	assert.False(t, removed)
	assert.Equal(t, errors.ErrTaskNotFound, err)
}

func TestTaskService_EditValidation(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())
	owner := uuid.New()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, "shop", "milk")
	assert.NoError(t, err)

	_, err = svc.Edit(ctx, owner, created.ID, "", "milk")
	assert.Equal(t, errors.ErrEmptyField, err)

	_, err = svc.Edit(ctx, owner, created.ID, "shop", "")
	assert.Equal(t, errors.ErrEmptyField, err)

	// failed edits leave the task untouched
	got, err := svc.Get(ctx, owner, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "shop", got.Name)
	assert.Equal(t, "milk", got.Content)
}

func TestTaskService_OwnershipIsolation(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())
	ownerA := uuid.New()
	ownerB := uuid.New()
	ctx := context.Background()

	created, err := svc.Create(ctx, ownerA, "shop", "milk")
	assert.NoError(t, err)

	// B holds the correct task id but must never see A's task
	_, err = svc.Get(ctx, ownerB, created.ID)
	assert.Equal(t, errors.ErrTaskNotFound, err)

	_, err = svc.Edit(ctx, ownerB, created.ID, "stolen", "data")
	assert.Equal(t, errors.ErrTaskNotFound, err)

	removed, err := svc.Delete(ctx, ownerB, created.ID)
	assert.False(t, removed)
	assert.Equal(t, errors.ErrTaskNotFound, err)

	tasks, err := svc.List(ctx, ownerB)
	assert.NoError(t, err)
	assert.Empty(t, tasks)

	// A's task survives unchanged
	got, err := svc.Get(ctx, ownerA, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "shop", got.Name)
	assert.Equal(t, "milk", got.Content)
}

func TestTaskService_GetMapsWrappedMiss(t *testing.T) {
	svc := NewTaskService(wrappedMissRepo{memTaskRepo: newMemTaskRepo()})

	_, err := svc.Get(context.Background(), uuid.New(), uuid.New())
	assert.Equal(t, errors.ErrTaskNotFound, err)

	_, err = svc.Edit(context.Background(), uuid.New(), uuid.New(), "shop", "milk")
	assert.Equal(t, errors.ErrTaskNotFound, err)
}

func TestTaskService_ListEmpty(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())

	tasks, err := svc.List(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskService_List(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())
	owner := uuid.New()
	ctx := context.Background()

	_, err := svc.Create(ctx, owner, "shop", "milk")
	assert.NoError(t, err)
	_, err = svc.Create(ctx, owner, "deploy", "staging rollout")
	assert.NoError(t, err)

	tasks, err := svc.List(ctx, owner)
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, owner, task.UserID)
	}
}
