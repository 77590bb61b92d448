package models

import (
	"time"

	"github.com/google/uuid"

	"hotelops/internal/units"
)

// ConversionProfile maps a unit code to a base-unit factor, overriding the
// generic category tables for one item.
type ConversionProfile map[string]float64

// InventoryItem is a stocked good belonging to one hotel. StockQty and
// BaseStockQty both hold the quantity in base units and must stay equal after
// every mutation; all writes go through the stock ledger.
type InventoryItem struct {
	ID                  uuid.UUID                 `json:"id" db:"id"`
	HotelID             uuid.UUID                 `json:"hotel_id" db:"hotel_id"`
	Name                string                    `json:"name" db:"name"`
	SKU                 string                    `json:"sku" db:"sku"`
	Unit                string                    `json:"unit" db:"unit"`
	BaseUnit            string                    `json:"base_unit" db:"base_unit"`
	PackageUnit         *string                   `json:"package_unit" db:"package_unit"`
	BaseUnitsPerPackage *float64                  `json:"base_units_per_package" db:"base_units_per_package"`
	StockQty            float64                   `json:"stock_qty" db:"stock_qty"`
	BaseStockQty        float64                   `json:"base_stock_qty" db:"base_stock_qty"`
	ReorderLevel        float64                   `json:"reorder_level" db:"reorder_level"`
	CostPerUnit         float64                   `json:"cost_per_unit" db:"cost_per_unit"`
	MeasurementCategory units.MeasurementCategory `json:"measurement_category" db:"measurement_category"`
	ConversionProfile   ConversionProfile         `json:"conversion_profile" db:"conversion_profile"`
	CreatedAt           time.Time                 `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time                 `json:"updated_at" db:"updated_at"`
	DeletedAt           *time.Time                `json:"deleted_at,omitempty" db:"deleted_at"`
}

// Category returns the item's measurement category, defaulting to weight when
// unset, matching how recipes resolve ingredient conversions.
func (i *InventoryItem) Category() units.MeasurementCategory {
	if i.MeasurementCategory == "" {
		return units.CategoryWeight
	}
	return i.MeasurementCategory
}

// Transaction types recorded in the inventory ledger.
const (
	TxnReceive    = "receive"
	TxnIssue      = "issue"
	TxnReturn     = "return"
	TxnAdjustment = "adjustment"
	TxnWastage    = "wastage"
)

// ValidTransactionType reports whether t names a ledger transaction type.
func ValidTransactionType(t string) bool {
	switch t {
	case TxnReceive, TxnIssue, TxnReturn, TxnAdjustment, TxnWastage:
		return true
	}
	return false
}

// InventoryTransaction is an immutable ledger entry recording one stock
// mutation. QtyBase is the signed effect already resolved to base units. It is
// inserted in the same database transaction as the item's stock update.
type InventoryTransaction struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	HotelID         uuid.UUID  `json:"hotel_id" db:"hotel_id"`
	ItemID          uuid.UUID  `json:"item_id" db:"item_id"`
	TransactionType string     `json:"transaction_type" db:"transaction_type"`
	QtyBase         float64    `json:"qty_base" db:"qty_base"`
	QtyPackage      *float64   `json:"qty_package" db:"qty_package"`
	RecordedBy      uuid.UUID  `json:"recorded_by" db:"recorded_by"`
	IssuedTo        *uuid.UUID `json:"issued_to" db:"issued_to"`
	Notes           *string    `json:"notes" db:"notes"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

// InventorySearchFilter holds filter criteria for inventory item queries.
type InventorySearchFilter struct {
	Query        string   `json:"query,omitempty"`
	LowStockOnly bool     `json:"low_stock_only,omitempty"`
	MaxStock     *float64 `json:"max_stock,omitempty"`
	SortBy       string   `json:"sort_by,omitempty"`
	SortOrder    string   `json:"sort_order,omitempty"`
	Limit        int      `json:"limit,omitempty"`
	Offset       int      `json:"offset,omitempty"`
}
