package handler

import (
	"time"

	"github.com/google/uuid"
)

type createTaskRequest struct {
	Title string `json:"title" validate:"required,min=1,max=500"`
}

type updateTaskRequest struct {
	Title string `json:"title" validate:"required,min=1,max=500"`
}

// taskResponse is the transport view of a task, intentionally separate from
// the domain type so the JSON contract is not coupled to internal changes.
type taskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"is_completed"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
