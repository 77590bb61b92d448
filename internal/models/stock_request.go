package models

import (
	"time"

	"github.com/google/uuid"
)

// Stock request statuses. Transitions are linear:
// pending -> approved -> delivered.
const (
	StockRequestStatusPending   = "pending"
	StockRequestStatusApproved  = "approved"
	StockRequestStatusDelivered = "delivered"
)

// StockRequest is a staff request to draw inventory for a department. Stock
// is checked at approval but only deducted at delivery.
type StockRequest struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	HotelID     uuid.UUID  `json:"hotel_id" db:"hotel_id"`
	ItemID      uuid.UUID  `json:"item_id" db:"item_id"`
	RequestedBy uuid.UUID  `json:"requested_by" db:"requested_by"`
	Qty         float64    `json:"qty" db:"qty"`
	Unit        string     `json:"unit" db:"unit"`
	Department  string     `json:"department" db:"department"`
	Status      string     `json:"status" db:"status"`
	ApprovedBy  *uuid.UUID `json:"approved_by" db:"approved_by"`
	DeliveredBy *uuid.UUID `json:"delivered_by" db:"delivered_by"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// DepartmentForRole maps the operational roles allowed to raise stock
// requests to the department the request draws for.
var DepartmentForRole = map[string]string{
	"bartender":     "bar",
	"kitchen_staff": "kitchen",
	"barista":       "cafe",
}
