package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskdeck/todo-system/internal/core/domain"
)

// TaskService defines use-case operations for tasks. Every operation is
// scoped to the acting owner resolved from the request's bearer token.
type TaskService interface {
	Create(ctx context.Context, ownerID uuid.UUID, title string) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)
	GetOwned(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error)
	Update(ctx context.Context, taskID, ownerID uuid.UUID, title string) (*domain.Task, error)
	Toggle(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error)
	Delete(ctx context.Context, taskID, ownerID uuid.UUID) error
}
