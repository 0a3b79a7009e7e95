package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskdeck/todo-system/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Every method that
// targets a single task takes the acting owner id and applies it as a filter:
// a task owned by someone else is reported exactly like a missing task.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	// ListByOwner returns the owner's tasks ordered newest-created first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)
	FindOwned(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error)
	// UpdateTitle replaces the title and bumps updated_at in one statement.
	UpdateTitle(ctx context.Context, taskID, ownerID uuid.UUID, title string) (*domain.Task, error)
	// ToggleCompleted flips is_completed and bumps updated_at in one statement.
	ToggleCompleted(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, taskID, ownerID uuid.UUID) (bool, error)
}
