package models

import (
	"time"

	"github.com/google/uuid"
)

// KOT item statuses.
const (
	KotItemPending   = "pending"
	KotItemApproved  = "approved"
	KotItemDeclined  = "declined"
	KotItemReady     = "ready"
	KotItemServed    = "served"
	KotItemCompleted = "completed"
	KotItemCancelled = "cancelled"
)

// Derived KOT order statuses.
const (
	KotOrderOpen       = "open"
	KotOrderInProgress = "in_progress"
	KotOrderReady      = "ready"
	KotOrderCompleted  = "completed"
	KotOrderCancelled  = "cancelled"
)

// ValidKotItemStatus reports whether s names a KOT item status.
func ValidKotItemStatus(s string) bool {
	switch s {
	case KotItemPending, KotItemApproved, KotItemDeclined, KotItemReady,
		KotItemServed, KotItemCompleted, KotItemCancelled:
		return true
	}
	return false
}

// UsedIngredient records one ingredient deduction made for a KOT item.
type UsedIngredient struct {
	ItemID  uuid.UUID `json:"item_id"`
	Name    string    `json:"name"`
	QtyUsed float64   `json:"qty_used"`
	Unit    string    `json:"unit"`
}

// InventoryUsage is the audit record of a KOT item's recipe deduction. Its
// presence on an item is the idempotency guard against double deduction.
type InventoryUsage struct {
	UsedIngredients []UsedIngredient `json:"used_ingredients"`
	DeductedAt      time.Time        `json:"deducted_at"`
}

// KotOrder is one open tab for a restaurant table. Its status is a pure
// function of its items' statuses, recomputed after every item mutation and
// by the periodic sweep.
type KotOrder struct {
	ID          uuid.UUID `json:"id" db:"id"`
	HotelID     uuid.UUID `json:"hotel_id" db:"hotel_id"`
	TableNumber string    `json:"table_number" db:"table_number"`
	Status      string    `json:"status" db:"status"`
	CreatedBy   uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	Items []*KotItem `json:"items,omitempty" db:"-"`
}

// KotItem is one line of a KOT order with an independent lifecycle.
type KotItem struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	HotelID        uuid.UUID       `json:"hotel_id" db:"hotel_id"`
	OrderID        uuid.UUID       `json:"order_id" db:"order_id"`
	MenuItemID     *uuid.UUID      `json:"menu_item_id" db:"menu_item_id"`
	Name           string          `json:"name" db:"name"`
	Qty            float64         `json:"qty" db:"qty"`
	Status         string          `json:"status" db:"status"`
	DeclineReason  *string         `json:"decline_reason" db:"decline_reason"`
	InventoryUsage *InventoryUsage `json:"inventory_usage" db:"inventory_usage"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}
