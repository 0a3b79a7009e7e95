package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single todo item owned by exactly one user. OwnerID is immutable
// after creation; every read and mutation is filtered by it.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"is_completed"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
