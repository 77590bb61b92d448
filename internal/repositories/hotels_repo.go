package repositories

import (
	"context"
	"errors"

	"hotelops/internal/common"
	"hotelops/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type HotelRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Hotel, error)
	ListActive(ctx context.Context, limit, offset int) ([]*models.Hotel, error)
}

type hotelRepo struct {
	db Database
}

func NewHotelRepo(db Database) HotelRepository {
	return &hotelRepo{db: db}
}

func (r *hotelRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Hotel, error) {
	hotel := &models.Hotel{}
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM hotels
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&hotel.ID, &hotel.Name, &hotel.IsActive,
		&hotel.CreatedAt, &hotel.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &common.NotFoundError{Resource: "hotel", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return hotel, nil
}

func (r *hotelRepo) ListActive(ctx context.Context, limit, offset int) ([]*models.Hotel, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM hotels
		WHERE is_active = true
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hotels []*models.Hotel
	for rows.Next() {
		hotel := &models.Hotel{}
		if err := rows.Scan(&hotel.ID, &hotel.Name, &hotel.IsActive,
			&hotel.CreatedAt, &hotel.UpdatedAt); err != nil {
			return nil, err
		}
		hotels = append(hotels, hotel)
	}
	return hotels, rows.Err()
}
