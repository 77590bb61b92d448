package repositories

import (
	"context"
	"errors"

	"hotelops/internal/common"
	"hotelops/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository interface {
	GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.User, error)
	ListByRole(ctx context.Context, hotelID uuid.UUID, roles ...string) ([]*models.User, error)
}

type userRepo struct {
	db Database
}

func NewUserRepo(db Database) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, hotel_id, name, email, role, created_at
		FROM users
		WHERE hotel_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, hotelID, id).Scan(&user.ID, &user.HotelID, &user.Name,
		&user.Email, &user.Role, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &common.NotFoundError{Resource: "user", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) ListByRole(ctx context.Context, hotelID uuid.UUID, roles ...string) ([]*models.User, error) {
	query := `
		SELECT id, hotel_id, name, email, role, created_at
		FROM users
		WHERE hotel_id = $1 AND role = ANY($2)
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, query, hotelID, roles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.HotelID, &user.Name, &user.Email, &user.Role, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
