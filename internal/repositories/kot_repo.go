package repositories

import (
	"context"
	"errors"

	"hotelops/internal/common"
	"hotelops/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type KotRepository interface {
	CreateOrder(ctx context.Context, order *models.KotOrder) error
	GetOrder(ctx context.Context, hotelID, id uuid.UUID) (*models.KotOrder, error)
	ListOpenOrders(ctx context.Context, hotelID uuid.UUID) ([]*models.KotOrder, error)
	UpdateOrderStatus(ctx context.Context, hotelID, id uuid.UUID, status string) error

	CreateItem(ctx context.Context, item *models.KotItem) error
	GetItem(ctx context.Context, hotelID, id uuid.UUID) (*models.KotItem, error)
	ListItemsByOrder(ctx context.Context, hotelID, orderID uuid.UUID) ([]*models.KotItem, error)
	UpdateItemStatus(ctx context.Context, item *models.KotItem) error
	SetInventoryUsage(ctx context.Context, hotelID, itemID uuid.UUID, usage *models.InventoryUsage) error
}

type kotRepo struct {
	db Database
}

func NewKotRepo(db Database) KotRepository {
	return &kotRepo{db: db}
}

func (r *kotRepo) CreateOrder(ctx context.Context, order *models.KotOrder) error {
	query := `
		INSERT INTO kot_orders (id, hotel_id, table_number, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, order.ID, order.HotelID, order.TableNumber, order.Status, order.CreatedBy)
	return err
}

func (r *kotRepo) GetOrder(ctx context.Context, hotelID, id uuid.UUID) (*models.KotOrder, error) {
	order := &models.KotOrder{}
	query := `
		SELECT id, hotel_id, table_number, status, created_by, created_at, updated_at
		FROM kot_orders
		WHERE hotel_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, hotelID, id).Scan(&order.ID, &order.HotelID, &order.TableNumber,
		&order.Status, &order.CreatedBy, &order.CreatedAt, &order.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &common.NotFoundError{Resource: "KOT order", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}

	items, err := r.ListItemsByOrder(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// ListOpenOrders returns orders in a non-terminal status, for the periodic
// status sweep.
func (r *kotRepo) ListOpenOrders(ctx context.Context, hotelID uuid.UUID) ([]*models.KotOrder, error) {
	query := `
		SELECT id, hotel_id, table_number, status, created_by, created_at, updated_at
		FROM kot_orders
		WHERE hotel_id = $1 AND status NOT IN ($2, $3)
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, hotelID, models.KotOrderCompleted, models.KotOrderCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.KotOrder
	for rows.Next() {
		order := &models.KotOrder{}
		if err := rows.Scan(&order.ID, &order.HotelID, &order.TableNumber, &order.Status,
			&order.CreatedBy, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *kotRepo) UpdateOrderStatus(ctx context.Context, hotelID, id uuid.UUID, status string) error {
	query := `
		UPDATE kot_orders
		SET status = $1, updated_at = NOW()
		WHERE hotel_id = $2 AND id = $3
	`
	tag, err := r.db.Exec(ctx, query, status, hotelID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &common.NotFoundError{Resource: "KOT order", ID: id.String()}
	}
	return nil
}

func (r *kotRepo) CreateItem(ctx context.Context, item *models.KotItem) error {
	query := `
		INSERT INTO kot_items (id, hotel_id, order_id, menu_item_id, name, qty, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, item.ID, item.HotelID, item.OrderID, item.MenuItemID,
		item.Name, item.Qty, item.Status)
	return err
}

func (r *kotRepo) GetItem(ctx context.Context, hotelID, id uuid.UUID) (*models.KotItem, error) {
	item := &models.KotItem{}
	query := `
		SELECT id, hotel_id, order_id, menu_item_id, name, qty, status, decline_reason,
			inventory_usage, created_at, updated_at
		FROM kot_items
		WHERE hotel_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, hotelID, id).Scan(&item.ID, &item.HotelID, &item.OrderID,
		&item.MenuItemID, &item.Name, &item.Qty, &item.Status, &item.DeclineReason,
		&item.InventoryUsage, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &common.NotFoundError{Resource: "KOT item", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *kotRepo) ListItemsByOrder(ctx context.Context, hotelID, orderID uuid.UUID) ([]*models.KotItem, error) {
	query := `
		SELECT id, hotel_id, order_id, menu_item_id, name, qty, status, decline_reason,
			inventory_usage, created_at, updated_at
		FROM kot_items
		WHERE hotel_id = $1 AND order_id = $2
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, hotelID, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.KotItem
	for rows.Next() {
		item := &models.KotItem{}
		if err := rows.Scan(&item.ID, &item.HotelID, &item.OrderID, &item.MenuItemID, &item.Name,
			&item.Qty, &item.Status, &item.DeclineReason, &item.InventoryUsage,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *kotRepo) UpdateItemStatus(ctx context.Context, item *models.KotItem) error {
	query := `
		UPDATE kot_items
		SET status = $1, decline_reason = $2, updated_at = NOW()
		WHERE hotel_id = $3 AND id = $4
	`
	tag, err := r.db.Exec(ctx, query, item.Status, item.DeclineReason, item.HotelID, item.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &common.NotFoundError{Resource: "KOT item", ID: item.ID.String()}
	}
	return nil
}

// SetInventoryUsage records the deduction summary. It only writes when no
// usage exists yet, keeping the idempotency marker write-once even under a
// racing double approval.
func (r *kotRepo) SetInventoryUsage(ctx context.Context, hotelID, itemID uuid.UUID, usage *models.InventoryUsage) error {
	query := `
		UPDATE kot_items
		SET inventory_usage = $1, updated_at = NOW()
		WHERE hotel_id = $2 AND id = $3 AND inventory_usage IS NULL
	`
	_, err := r.db.Exec(ctx, query, usage, hotelID, itemID)
	return err
}
