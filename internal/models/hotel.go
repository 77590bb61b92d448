package models

import (
	"time"

	"github.com/google/uuid"
)

// Hotel is one tenant property. Every other row in the system is scoped to a
// hotel ID.
type Hotel struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
