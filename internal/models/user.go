package models

import (
	"time"

	"github.com/google/uuid"
)

// Role names recognized by the capability table. The core trusts the resolved
// role from the authenticated token; it does not re-derive identity.
const (
	RoleOwner        = "owner"
	RoleManager      = "manager"
	RoleStorekeeper  = "storekeeper"
	RoleKitchenStaff = "kitchen_staff"
	RoleBartender    = "bartender"
	RoleBarista      = "barista"
	RoleWaiter       = "waiter"
)

// User is the thin identity record the core needs: notification targets and
// audit attribution.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	HotelID   uuid.UUID `json:"hotel_id" db:"hotel_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
