package models

import (
	"time"

	"github.com/google/uuid"
)

// RecipeIngredient is one line of a menu item's recipe: the inventory
// consumed per unit of the menu item sold.
type RecipeIngredient struct {
	InventoryItemID uuid.UUID `json:"inventory_item_id"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
}

// MenuItem is a sellable restaurant item, optionally carrying a recipe that
// drives inventory deduction when a KOT item is approved.
type MenuItem struct {
	ID        uuid.UUID          `json:"id" db:"id"`
	HotelID   uuid.UUID          `json:"hotel_id" db:"hotel_id"`
	Name      string             `json:"name" db:"name"`
	Price     float64            `json:"price" db:"price"`
	Recipe    []RecipeIngredient `json:"recipe,omitempty" db:"recipe"`
	IsActive  bool               `json:"is_active" db:"is_active"`
	CreatedAt time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" db:"updated_at"`
}
