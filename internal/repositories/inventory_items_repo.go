package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotelops/internal/common"
	"hotelops/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InventoryItemRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.InventoryItem, error)
	GetBySKU(ctx context.Context, hotelID uuid.UUID, sku string) (*models.InventoryItem, error)
	List(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*models.InventoryItem, error)
	LowStock(ctx context.Context, hotelID uuid.UUID) ([]*models.InventoryItem, error)
	Search(ctx context.Context, hotelID uuid.UUID, filter *models.InventorySearchFilter) ([]*models.InventoryItem, error)
	SoftDelete(ctx context.Context, hotelID, id uuid.UUID) error
}

type inventoryItemRepo struct {
	db Database
}

func NewInventoryItemRepo(db Database) InventoryItemRepository {
	return &inventoryItemRepo{db: db}
}

const inventoryItemColumns = `id, hotel_id, name, sku, unit, base_unit, package_unit, base_units_per_package,
		stock_qty, base_stock_qty, reorder_level, cost_per_unit, measurement_category, conversion_profile,
		created_at, updated_at, deleted_at`

func scanInventoryItem(row pgx.Row) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	err := row.Scan(&item.ID, &item.HotelID, &item.Name, &item.SKU, &item.Unit, &item.BaseUnit,
		&item.PackageUnit, &item.BaseUnitsPerPackage, &item.StockQty, &item.BaseStockQty,
		&item.ReorderLevel, &item.CostPerUnit, &item.MeasurementCategory, &item.ConversionProfile,
		&item.CreatedAt, &item.UpdatedAt, &item.DeletedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *inventoryItemRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, hotel_id, name, sku, unit, base_unit, package_unit,
			base_units_per_package, stock_qty, base_stock_qty, reorder_level, cost_per_unit,
			measurement_category, conversion_profile, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, item.ID, item.HotelID, item.Name, item.SKU, item.Unit,
		item.BaseUnit, item.PackageUnit, item.BaseUnitsPerPackage, item.StockQty, item.BaseStockQty,
		item.ReorderLevel, item.CostPerUnit, item.MeasurementCategory, item.ConversionProfile)
	return err
}

func (r *inventoryItemRepo) GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items
		WHERE hotel_id = $1 AND id = $2 AND deleted_at IS NULL
	`
	item, err := scanInventoryItem(r.db.QueryRow(ctx, query, hotelID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &common.NotFoundError{Resource: "inventory item", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *inventoryItemRepo) GetBySKU(ctx context.Context, hotelID uuid.UUID, sku string) (*models.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items
		WHERE hotel_id = $1 AND sku = $2 AND deleted_at IS NULL
	`
	item, err := scanInventoryItem(r.db.QueryRow(ctx, query, hotelID, sku))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &common.NotFoundError{Resource: "inventory item", ID: sku}
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *inventoryItemRepo) List(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*models.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items
		WHERE hotel_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, hotelID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInventoryItems(rows)
}

func (r *inventoryItemRepo) LowStock(ctx context.Context, hotelID uuid.UUID) ([]*models.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items
		WHERE hotel_id = $1 AND deleted_at IS NULL AND base_stock_qty <= reorder_level
		ORDER BY base_stock_qty ASC
	`
	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInventoryItems(rows)
}

// Search performs filtered search on inventory items
func (r *inventoryItemRepo) Search(ctx context.Context, hotelID uuid.UUID, filter *models.InventorySearchFilter) ([]*models.InventoryItem, error) {
	if filter.Limit == 0 {
		filter.Limit = 50
	}

	queryBase := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items
		WHERE hotel_id = $1 AND deleted_at IS NULL
	`
	args := []interface{}{hotelID}
	conditionCount := 1

	if filter.Query != "" {
		conditionCount++
		queryBase += fmt.Sprintf(` AND (name ILIKE $%d OR sku ILIKE $%d)`, conditionCount, conditionCount)
		args = append(args, "%"+filter.Query+"%")
	}
	if filter.LowStockOnly {
		queryBase += ` AND base_stock_qty <= reorder_level`
	}
	if filter.MaxStock != nil {
		conditionCount++
		queryBase += fmt.Sprintf(` AND base_stock_qty <= $%d`, conditionCount)
		args = append(args, *filter.MaxStock)
	}

	sortField := "name"
	switch filter.SortBy {
	case "stock":
		sortField = "base_stock_qty"
	case "updated":
		sortField = "updated_at"
	}
	sortOrder := "ASC"
	if strings.ToLower(filter.SortOrder) == "desc" {
		sortOrder = "DESC"
	}
	queryBase += fmt.Sprintf(` ORDER BY %s %s`, sortField, sortOrder)

	conditionCount++
	queryBase += fmt.Sprintf(` LIMIT $%d`, conditionCount)
	args = append(args, filter.Limit)
	if filter.Offset > 0 {
		conditionCount++
		queryBase += fmt.Sprintf(` OFFSET $%d`, conditionCount)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Query(ctx, queryBase, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInventoryItems(rows)
}

// SoftDelete marks the item deleted, preserving ledger and audit history.
func (r *inventoryItemRepo) SoftDelete(ctx context.Context, hotelID, id uuid.UUID) error {
	query := `
		UPDATE inventory_items
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE hotel_id = $1 AND id = $2 AND deleted_at IS NULL
	`
	tag, err := r.db.Exec(ctx, query, hotelID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &common.NotFoundError{Resource: "inventory item", ID: id.String()}
	}
	return nil
}

func collectInventoryItems(rows pgx.Rows) ([]*models.InventoryItem, error) {
	var items []*models.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
