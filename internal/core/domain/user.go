package domain

import (
	"time"

	"github.com/google/uuid"
)

// User models a registered account. Email is the login key and is unique
// across the directory; PasswordHash is never serialized.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
