package ports

import (
	"context"

	"github.com/taskdeck/todo-system/internal/core/domain"
)

type AuthService interface {
	// Register creates an account and returns it together with a freshly
	// issued bearer token. Fails with domain.ErrEmailTaken on duplicates.
	Register(ctx context.Context, email, password string) (*domain.User, string, error)
	// Login verifies credentials and returns the user and a bearer token.
	// Unknown email and wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
