package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"hotelops/internal/models"
	"hotelops/internal/repositories"
)

// AuditLogsService records selected state transitions and approval decisions.
// Recording is best effort; failures are swallowed so they never fail the
// triggering operation.
type AuditLogsService interface {
	Record(ctx context.Context, hotelID uuid.UUID, tableName, recordID, action string, changedBy *uuid.UUID, newValues models.JSONB)
	List(ctx context.Context, hotelID uuid.UUID, tableName string, limit, offset int) ([]*models.AuditLog, error)
}

type auditLogsService struct {
	auditRepo repositories.AuditLogsRepository
}

func NewAuditLogsService(auditRepo repositories.AuditLogsRepository) AuditLogsService {
	return &auditLogsService{auditRepo: auditRepo}
}

func (s *auditLogsService) Record(ctx context.Context, hotelID uuid.UUID, tableName, recordID, action string, changedBy *uuid.UUID, newValues models.JSONB) {
	entry := &models.AuditLog{
		ID:        uuid.New(),
		HotelID:   hotelID,
		TableName: tableName,
		RecordID:  recordID,
		Action:    action,
		NewValues: newValues,
		ChangedBy: changedBy,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.Printf("Failed to write audit log for %s %s: %v", tableName, recordID, err)
	}
}

func (s *auditLogsService) List(ctx context.Context, hotelID uuid.UUID, tableName string, limit, offset int) ([]*models.AuditLog, error) {
	return s.auditRepo.List(ctx, hotelID, tableName, limit, offset)
}
