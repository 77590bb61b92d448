package repositories

import (
	"context"
	"errors"

	"hotelops/internal/common"
	"hotelops/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MenuItemRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.MenuItem, error)
	List(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*models.MenuItem, error)
	Update(ctx context.Context, item *models.MenuItem) error
}

type menuItemRepo struct {
	db Database
}

func NewMenuItemRepo(db Database) MenuItemRepository {
	return &menuItemRepo{db: db}
}

func (r *menuItemRepo) Create(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, hotel_id, name, price, recipe, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, item.ID, item.HotelID, item.Name, item.Price, item.Recipe, item.IsActive)
	return err
}

func (r *menuItemRepo) GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	query := `
		SELECT id, hotel_id, name, price, recipe, is_active, created_at, updated_at
		FROM menu_items
		WHERE hotel_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, hotelID, id).Scan(&item.ID, &item.HotelID, &item.Name,
		&item.Price, &item.Recipe, &item.IsActive, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &common.NotFoundError{Resource: "menu item", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *menuItemRepo) List(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*models.MenuItem, error) {
	query := `
		SELECT id, hotel_id, name, price, recipe, is_active, created_at, updated_at
		FROM menu_items
		WHERE hotel_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, hotelID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		item := &models.MenuItem{}
		if err := rows.Scan(&item.ID, &item.HotelID, &item.Name, &item.Price, &item.Recipe,
			&item.IsActive, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *menuItemRepo) Update(ctx context.Context, item *models.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $1, price = $2, recipe = $3, is_active = $4, updated_at = NOW()
		WHERE hotel_id = $5 AND id = $6
	`
	tag, err := r.db.Exec(ctx, query, item.Name, item.Price, item.Recipe, item.IsActive, item.HotelID, item.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &common.NotFoundError{Resource: "menu item", ID: item.ID.String()}
	}
	return nil
}
