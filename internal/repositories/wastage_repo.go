package repositories

import (
	"context"
	"errors"

	"hotelops/internal/common"
	"hotelops/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type WastageRepository interface {
	Create(ctx context.Context, wastage *models.Wastage) error
	GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.Wastage, error)
	List(ctx context.Context, hotelID uuid.UUID, status string, limit, offset int) ([]*models.Wastage, error)
	Transition(ctx context.Context, wastage *models.Wastage, fromStatus string) error
	SetPhoto(ctx context.Context, hotelID, id uuid.UUID, objectName string) error
}

type wastageRepo struct {
	db Database
}

func NewWastageRepo(db Database) WastageRepository {
	return &wastageRepo{db: db}
}

const wastageColumns = `id, hotel_id, item_id, qty, unit, reason, status, estimated_value,
		recorded_by, approved_by, rejection_reason, photo_object, created_at, updated_at`

func (r *wastageRepo) Create(ctx context.Context, wastage *models.Wastage) error {
	query := `
		INSERT INTO wastages (id, hotel_id, item_id, qty, unit, reason, status, estimated_value,
			recorded_by, approved_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, wastage.ID, wastage.HotelID, wastage.ItemID, wastage.Qty,
		wastage.Unit, wastage.Reason, wastage.Status, wastage.EstimatedValue, wastage.RecordedBy,
		wastage.ApprovedBy)
	return err
}

func (r *wastageRepo) GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.Wastage, error) {
	wastage := &models.Wastage{}
	query := `
		SELECT ` + wastageColumns + `
		FROM wastages
		WHERE hotel_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, hotelID, id).Scan(&wastage.ID, &wastage.HotelID, &wastage.ItemID,
		&wastage.Qty, &wastage.Unit, &wastage.Reason, &wastage.Status, &wastage.EstimatedValue,
		&wastage.RecordedBy, &wastage.ApprovedBy, &wastage.RejectionReason, &wastage.PhotoObject,
		&wastage.CreatedAt, &wastage.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &common.NotFoundError{Resource: "wastage", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return wastage, nil
}

func (r *wastageRepo) List(ctx context.Context, hotelID uuid.UUID, status string, limit, offset int) ([]*models.Wastage, error) {
	query := `
		SELECT ` + wastageColumns + `
		FROM wastages
		WHERE hotel_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, hotelID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wastages []*models.Wastage
	for rows.Next() {
		wastage := &models.Wastage{}
		if err := rows.Scan(&wastage.ID, &wastage.HotelID, &wastage.ItemID, &wastage.Qty,
			&wastage.Unit, &wastage.Reason, &wastage.Status, &wastage.EstimatedValue,
			&wastage.RecordedBy, &wastage.ApprovedBy, &wastage.RejectionReason, &wastage.PhotoObject,
			&wastage.CreatedAt, &wastage.UpdatedAt); err != nil {
			return nil, err
		}
		wastages = append(wastages, wastage)
	}
	return wastages, rows.Err()
}

// Transition moves a wastage record between statuses with a compare-and-swap
// on the current status, so two concurrent approvals cannot both win.
func (r *wastageRepo) Transition(ctx context.Context, wastage *models.Wastage, fromStatus string) error {
	query := `
		UPDATE wastages
		SET status = $1, approved_by = $2, rejection_reason = $3, updated_at = NOW()
		WHERE hotel_id = $4 AND id = $5 AND status = $6
	`
	tag, err := r.db.Exec(ctx, query, wastage.Status, wastage.ApprovedBy, wastage.RejectionReason,
		wastage.HotelID, wastage.ID, fromStatus)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return common.NewValidationError("status", "wastage is not in "+fromStatus+" state")
	}
	return nil
}

func (r *wastageRepo) SetPhoto(ctx context.Context, hotelID, id uuid.UUID, objectName string) error {
	query := `
		UPDATE wastages
		SET photo_object = $1, updated_at = NOW()
		WHERE hotel_id = $2 AND id = $3
	`
	tag, err := r.db.Exec(ctx, query, objectName, hotelID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &common.NotFoundError{Resource: "wastage", ID: id.String()}
	}
	return nil
}
