package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types used by the workflows.
const (
	NotificationWastageApproval = "wastage_approval"
	NotificationStockRequest    = "stock_request"
	NotificationLowStock        = "low_stock"
)

// Notification is a best-effort message to a user. Delivery failure never
// fails the operation that raised it.
type Notification struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	HotelID   uuid.UUID  `json:"hotel_id" db:"hotel_id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	Title     string     `json:"title" db:"title"`
	Message   string     `json:"message" db:"message"`
	Type      string     `json:"type" db:"type"`
	RelatedID *uuid.UUID `json:"related_id" db:"related_id"`
	IsRead    bool       `json:"is_read" db:"is_read"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
