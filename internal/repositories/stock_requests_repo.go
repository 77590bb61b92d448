package repositories

import (
	"context"
	"errors"

	"hotelops/internal/common"
	"hotelops/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type StockRequestRepository interface {
	Create(ctx context.Context, request *models.StockRequest) error
	GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.StockRequest, error)
	List(ctx context.Context, hotelID uuid.UUID, status string, limit, offset int) ([]*models.StockRequest, error)
	// Transition updates the status only when the request is currently in
	// fromStatus, guarding against concurrent double approval or delivery.
	Transition(ctx context.Context, request *models.StockRequest, fromStatus string) error
}

type stockRequestRepo struct {
	db Database
}

func NewStockRequestRepo(db Database) StockRequestRepository {
	return &stockRequestRepo{db: db}
}

const stockRequestColumns = `id, hotel_id, item_id, requested_by, qty, unit, department, status,
		approved_by, delivered_by, created_at, updated_at`

func (r *stockRequestRepo) Create(ctx context.Context, request *models.StockRequest) error {
	query := `
		INSERT INTO stock_requests (id, hotel_id, item_id, requested_by, qty, unit, department,
			status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, request.ID, request.HotelID, request.ItemID, request.RequestedBy,
		request.Qty, request.Unit, request.Department, request.Status)
	return err
}

func (r *stockRequestRepo) GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.StockRequest, error) {
	request := &models.StockRequest{}
	query := `
		SELECT ` + stockRequestColumns + `
		FROM stock_requests
		WHERE hotel_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, hotelID, id).Scan(&request.ID, &request.HotelID, &request.ItemID,
		&request.RequestedBy, &request.Qty, &request.Unit, &request.Department, &request.Status,
		&request.ApprovedBy, &request.DeliveredBy, &request.CreatedAt, &request.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &common.NotFoundError{Resource: "stock request", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (r *stockRequestRepo) List(ctx context.Context, hotelID uuid.UUID, status string, limit, offset int) ([]*models.StockRequest, error) {
	query := `
		SELECT ` + stockRequestColumns + `
		FROM stock_requests
		WHERE hotel_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, hotelID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.StockRequest
	for rows.Next() {
		request := &models.StockRequest{}
		if err := rows.Scan(&request.ID, &request.HotelID, &request.ItemID, &request.RequestedBy,
			&request.Qty, &request.Unit, &request.Department, &request.Status, &request.ApprovedBy,
			&request.DeliveredBy, &request.CreatedAt, &request.UpdatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func (r *stockRequestRepo) Transition(ctx context.Context, request *models.StockRequest, fromStatus string) error {
	query := `
		UPDATE stock_requests
		SET status = $1, approved_by = $2, delivered_by = $3, updated_at = NOW()
		WHERE hotel_id = $4 AND id = $5 AND status = $6
	`
	tag, err := r.db.Exec(ctx, query, request.Status, request.ApprovedBy, request.DeliveredBy,
		request.HotelID, request.ID, fromStatus)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return common.NewValidationError("status", "request is not in "+fromStatus+" state")
	}
	return nil
}
