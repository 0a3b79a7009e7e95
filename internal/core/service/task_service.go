package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskdeck/todo-system/internal/api/metrics"
	"github.com/taskdeck/todo-system/internal/core/domain"
	"github.com/taskdeck/todo-system/internal/core/ports"
)

// TaskService implements ownership-scoped task operations. Title bounds are
// enforced at the handler boundary; this layer assigns identity and
// timestamps and delegates the owner filter to the repository.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) Create(ctx context.Context, ownerID uuid.UUID, title string) (*domain.Task, error) {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.New(),
		Title:       title,
		IsCompleted: false,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	metrics.TasksCreatedTotal.Inc()
	s.logger.Info().Str("task_id", task.ID.String()).Str("owner_id", ownerID.String()).Msg("task created")

	return task, nil
}

func (s *TaskService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetOwned(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error) {
	task, err := s.repo.FindOwned(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, taskID, ownerID uuid.UUID, title string) (*domain.Task, error) {
	task, err := s.repo.UpdateTitle(ctx, taskID, ownerID, title)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", taskID.String()).Msg("task title updated")
	return task, nil
}

func (s *TaskService) Toggle(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error) {
	task, err := s.repo.ToggleCompleted(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}

	metrics.TasksToggledTotal.Inc()
	s.logger.Info().Str("task_id", taskID.String()).Bool("is_completed", task.IsCompleted).Msg("task toggled")

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, taskID, ownerID uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if !deleted {
		return domain.ErrTaskNotFound
	}

	metrics.TasksDeletedTotal.Inc()
	s.logger.Info().Str("task_id", taskID.String()).Msg("task deleted")

	return nil
}
