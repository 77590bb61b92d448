package repositories

import (
	"context"

	"hotelops/internal/models"

	"github.com/google/uuid"
)

type AuditLogsRepository interface {
	Create(ctx context.Context, log *models.AuditLog) error
	List(ctx context.Context, hotelID uuid.UUID, tableName string, limit, offset int) ([]*models.AuditLog, error)
}

type auditLogsRepo struct {
	db Database
}

func NewAuditLogsRepo(db Database) AuditLogsRepository {
	return &auditLogsRepo{db: db}
}

func (r *auditLogsRepo) Create(ctx context.Context, log *models.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, hotel_id, table_name, record_id, action, new_values, old_values, changed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	_, err := r.db.Exec(ctx, query, log.ID, log.HotelID, log.TableName, log.RecordID, log.Action,
		log.NewValues, log.OldValues, log.ChangedBy)
	return err
}

func (r *auditLogsRepo) List(ctx context.Context, hotelID uuid.UUID, tableName string, limit, offset int) ([]*models.AuditLog, error) {
	query := `
		SELECT id, hotel_id, table_name, record_id, action, new_values, old_values, changed_by, created_at
		FROM audit_logs
		WHERE hotel_id = $1 AND ($2 = '' OR table_name = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, hotelID, tableName, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.AuditLog
	for rows.Next() {
		log := &models.AuditLog{}
		if err := rows.Scan(&log.ID, &log.HotelID, &log.TableName, &log.RecordID, &log.Action,
			&log.NewValues, &log.OldValues, &log.ChangedBy, &log.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
