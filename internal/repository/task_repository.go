package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasker/internal/model"
)

// TaskRepository defines task persistence operations. Every lookup and
// mutation is scoped by (id, user_id) so ownership is enforced at the query
// level, not in the caller.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	// DeleteByIDAndOwner removes the matching task and returns the number of
	// rows removed (zero when no task matched).
	DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (int64, error)
	// WithTransaction executes fn within a single transaction; fn receives a
	// repository bound to that transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo TaskRepository) error) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds a GORM-backed repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Task{})
	return res.RowsAffected, res.Error
}

func (r *taskRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo TaskRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &taskRepository{db: tx})
	})
}
