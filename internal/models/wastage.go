package models

import (
	"time"

	"github.com/google/uuid"
)

// Wastage statuses.
const (
	WastageStatusPendingApproval = "pending_approval"
	WastageStatusApproved        = "approved"
	WastageStatusRejected        = "rejected"
)

// HighValueWastageThreshold is the estimated value above which a wastage
// claim from a non-manager requires manager approval before touching the
// ledger (in currency units).
const HighValueWastageThreshold = 1000.0

// Wastage is a claim that a quantity of an item was lost. Qty and Unit are
// recorded as claimed, pre-conversion; EstimatedValue is computed on the
// claimed quantity at claim time.
type Wastage struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	HotelID         uuid.UUID  `json:"hotel_id" db:"hotel_id"`
	ItemID          uuid.UUID  `json:"item_id" db:"item_id"`
	Qty             float64    `json:"qty" db:"qty"`
	Unit            string     `json:"unit" db:"unit"`
	Reason          string     `json:"reason" db:"reason"`
	Status          string     `json:"status" db:"status"`
	EstimatedValue  float64    `json:"estimated_value" db:"estimated_value"`
	RecordedBy      uuid.UUID  `json:"recorded_by" db:"recorded_by"`
	ApprovedBy      *uuid.UUID `json:"approved_by" db:"approved_by"`
	RejectionReason *string    `json:"rejection_reason" db:"rejection_reason"`
	PhotoObject     *string    `json:"photo_object" db:"photo_object"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}
