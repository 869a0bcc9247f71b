package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasker/internal/errors"
	"tasker/internal/model"
	"tasker/internal/repository"
	"tasker/internal/validation"
)

// TaskService performs ownership-scoped CRUD on tasks. Each operation runs
// inside one transaction so a failure never leaves a half-applied record.
type TaskService interface {
	Create(ctx context.Context, ownerID uuid.UUID, name, content string) (*model.Task, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error)
	Get(ctx context.Context, ownerID, taskID uuid.UUID) (*model.Task, error)
	Edit(ctx context.Context, ownerID, taskID uuid.UUID, name, content string) (*model.Task, error)
	Delete(ctx context.Context, ownerID, taskID uuid.UUID) (bool, error)
}

type taskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

// Create validates name and content and persists a new task for ownerID.
func (s *taskService) Create(ctx context.Context, ownerID uuid.UUID, name, content string) (*model.Task, error) {
	if err := validation.Name(name); err != nil {
		return nil, err
	}
	if err := validation.Content(content); err != nil {
		return nil, err
	}

	task := &model.Task{
		UserID:  ownerID,
		Name:    name,
		Content: content,
	}

	err := s.taskRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.TaskRepository) error {
		return repo.Create(ctx, task)
	})
	if err != nil {
		return nil, errors.ErrStorageUnavailable
	}

	return task, nil
}

// List returns all tasks owned by ownerID in storage-native order.
func (s *taskService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := s.taskRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.TaskRepository) error {
		found, err := repo.FindByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		tasks = found
		return nil
	})
	if err != nil {
		return nil, errors.ErrStorageUnavailable
	}
	if tasks == nil {
		// an owner with no tasks gets an empty list, not null
		tasks = []model.Task{}
	}

	return tasks, nil
}

// Get returns the task with taskID owned by ownerID.
func (s *taskService) Get(ctx context.Context, ownerID, taskID uuid.UUID) (*model.Task, error) {
	var task *model.Task
	err := s.taskRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.TaskRepository) error {
		found, err := repo.FindByIDAndOwner(ctx, taskID, ownerID)
		if err != nil {
			return err
		}
		task = found
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrTaskNotFound
		}
		return nil, errors.ErrStorageUnavailable
	}

	return task, nil
}

// Edit replaces name and content of the task with taskID owned by ownerID.
func (s *taskService) Edit(ctx context.Context, ownerID, taskID uuid.UUID, name, content string) (*model.Task, error) {
	if err := validation.Name(name); err != nil {
		return nil, err
	}
	if err := validation.Content(content); err != nil {
		return nil, err
	}

	var task *model.Task
	err := s.taskRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.TaskRepository) error {
		found, err := repo.FindByIDAndOwner(ctx, taskID, ownerID)
		if err != nil {
			return err
		}
		found.Name = name
		found.Content = content
		if err := repo.Update(ctx, found); err != nil {
			return err
		}
		task = found
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrTaskNotFound
		}
		return nil, errors.ErrStorageUnavailable
	}

	return task, nil
}

// Delete removes the task with taskID owned by ownerID. True absence is
// reported as ErrTaskNotFound; the boolean covers only the success case.
func (s *taskService) Delete(ctx context.Context, ownerID, taskID uuid.UUID) (bool, error) {
	var removed int64
	err := s.taskRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.TaskRepository) error {
		n, err := repo.DeleteByIDAndOwner(ctx, taskID, ownerID)
		if err != nil {
			return err
		}
		removed = n
		return nil
	})
	if err != nil {
		return false, errors.ErrStorageUnavailable
	}
	if removed == 0 {
		return false, errors.ErrTaskNotFound
	}

	return true, nil
}
