package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskdeck/todo-system/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
