package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"hotelops/internal/common"
	"hotelops/internal/models"
	"hotelops/internal/repositories"
	"hotelops/internal/units"
)

type CreateWastageRequest struct {
	ItemID uuid.UUID `json:"item_id"`
	Qty    float64   `json:"qty"`
	Unit   string    `json:"unit"`
	Reason string    `json:"reason"`
}

type WastageService interface {
	Create(ctx context.Context, hotelID, recordedBy uuid.UUID, role string, req *CreateWastageRequest) (*models.Wastage, error)
	Approve(ctx context.Context, hotelID, wastageID, approverID uuid.UUID) (*models.Wastage, error)
	Reject(ctx context.Context, hotelID, wastageID, approverID uuid.UUID, reason string) (*models.Wastage, error)
	List(ctx context.Context, hotelID uuid.UUID, status string, limit, offset int) ([]*models.Wastage, error)
	AttachPhoto(ctx context.Context, hotelID, wastageID uuid.UUID, reader io.Reader, size int64) (string, error)
}

type wastageService struct {
	wastageRepo  repositories.WastageRepository
	itemRepo     repositories.InventoryItemRepository
	ledger       StockLedger
	notifySvc    NotificationService
	auditSvc     AuditLogsService
	objectSvc    ObjectStorageService
	photosBucket string
}

func NewWastageService(wastageRepo repositories.WastageRepository, itemRepo repositories.InventoryItemRepository,
	ledger StockLedger, notifySvc NotificationService, auditSvc AuditLogsService,
	objectSvc ObjectStorageService, photosBucket string) WastageService {
	return &wastageService{
		wastageRepo:  wastageRepo,
		itemRepo:     itemRepo,
		ledger:       ledger,
		notifySvc:    notifySvc,
		auditSvc:     auditSvc,
		objectSvc:    objectSvc,
		photosBucket: photosBucket,
	}
}

func (s *wastageService) Create(ctx context.Context, hotelID, recordedBy uuid.UUID, role string, req *CreateWastageRequest) (*models.Wastage, error) {
	if req.Qty <= 0 || math.IsNaN(req.Qty) || math.IsInf(req.Qty, 0) {
		return nil, common.NewValidationError("qty", "must be a finite positive number")
	}
	if err := common.ValidateReason(req.Reason, 5, "reason"); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, hotelID, req.ItemID)
	if err != nil {
		return nil, err
	}

	unit := req.Unit
	if unit == "" {
		unit = item.BaseUnit
	}

	// Conversion failures here are financial-sensitive and propagate; the
	// claim must not proceed on bad data.
	qtyBase, err := units.ConvertToBase(req.Qty, unit, item.BaseUnit, item.Category(), item.ConversionProfile)
	if err != nil {
		return nil, err
	}
	if qtyBase > item.BaseStockQty {
		return nil, &common.InsufficientStockError{
			ItemID:    item.ID.String(),
			Available: item.BaseStockQty,
			Requested: qtyBase,
		}
	}

	// Valuation uses the claimed quantity as filed, not the base-unit
	// conversion. This mirrors how claims are priced upstream.
	estimatedValue := req.Qty * item.CostPerUnit

	wastage := &models.Wastage{
		ID:             uuid.New(),
		HotelID:        hotelID,
		ItemID:         item.ID,
		Qty:            req.Qty,
		Unit:           unit,
		Reason:         req.Reason,
		EstimatedValue: estimatedValue,
		RecordedBy:     recordedBy,
	}

	needsApproval := estimatedValue > models.HighValueWastageThreshold &&
		role != models.RoleManager && role != models.RoleOwner

	if needsApproval {
		wastage.Status = models.WastageStatusPendingApproval
		if err := s.wastageRepo.Create(ctx, wastage); err != nil {
			return nil, err
		}
		s.notifyManagers(ctx, hotelID, wastage, item)
		return wastage, nil
	}

	// Auto-approved: the ledger deduction commits first. If it fails there is
	// no approved row left behind pointing at a deduction that never happened.
	wastage.Status = models.WastageStatusApproved
	wastage.ApprovedBy = &recordedBy

	notes := "Wastage: " + req.Reason
	if _, err := s.ledger.Wastage(ctx, hotelID, LedgerEntry{
		ItemID:     item.ID,
		QtyBase:    qtyBase,
		RecordedBy: recordedBy,
		Notes:      &notes,
	}); err != nil {
		return nil, err
	}

	if err := s.wastageRepo.Create(ctx, wastage); err != nil {
		return nil, err
	}

	s.audit(ctx, hotelID, wastage, &recordedBy, models.ActionInsert)
	return wastage, nil
}

// Approve re-validates current stock and commits the deduction at approval
// time: stock may have moved since the claim was filed.
func (s *wastageService) Approve(ctx context.Context, hotelID, wastageID, approverID uuid.UUID) (*models.Wastage, error) {
	wastage, err := s.wastageRepo.GetByID(ctx, hotelID, wastageID)
	if err != nil {
		return nil, err
	}
	if wastage.Status != models.WastageStatusPendingApproval {
		return nil, common.NewValidationError("status", "wastage is not pending approval")
	}

	item, err := s.itemRepo.GetByID(ctx, hotelID, wastage.ItemID)
	if err != nil {
		return nil, err
	}
	qtyBase, err := units.ConvertToBase(wastage.Qty, wastage.Unit, item.BaseUnit, item.Category(), item.ConversionProfile)
	if err != nil {
		return nil, err
	}

	// Claim the approval first. The guarded transition is what keeps two
	// concurrent approvers from both deducting; only the winner reaches the
	// ledger.
	wastage.Status = models.WastageStatusApproved
	wastage.ApprovedBy = &approverID
	if err := s.wastageRepo.Transition(ctx, wastage, models.WastageStatusPendingApproval); err != nil {
		return nil, err
	}

	notes := "Wastage: " + wastage.Reason
	if _, err := s.ledger.Wastage(ctx, hotelID, LedgerEntry{
		ItemID:     item.ID,
		QtyBase:    qtyBase,
		RecordedBy: approverID,
		Notes:      &notes,
	}); err != nil {
		// Put the claim back so it can be retried once stock allows.
		revert := *wastage
		revert.Status = models.WastageStatusPendingApproval
		revert.ApprovedBy = nil
		if revertErr := s.wastageRepo.Transition(ctx, &revert, models.WastageStatusApproved); revertErr != nil {
			log.Printf("Failed to revert wastage %s to pending after ledger failure: %v",
				wastage.ID.String(), revertErr)
		}
		return nil, err
	}

	s.audit(ctx, hotelID, wastage, &approverID, models.ActionApprove)
	return wastage, nil
}

// Reject never touches the ledger.
func (s *wastageService) Reject(ctx context.Context, hotelID, wastageID, approverID uuid.UUID, reason string) (*models.Wastage, error) {
	if err := common.ValidateReason(reason, 10, "rejection_reason"); err != nil {
		return nil, err
	}

	wastage, err := s.wastageRepo.GetByID(ctx, hotelID, wastageID)
	if err != nil {
		return nil, err
	}
	if wastage.Status != models.WastageStatusPendingApproval {
		return nil, common.NewValidationError("status", "wastage is not pending approval")
	}

	wastage.Status = models.WastageStatusRejected
	wastage.ApprovedBy = &approverID
	wastage.RejectionReason = &reason
	if err := s.wastageRepo.Transition(ctx, wastage, models.WastageStatusPendingApproval); err != nil {
		return nil, err
	}

	s.audit(ctx, hotelID, wastage, &approverID, models.ActionReject)
	return wastage, nil
}

func (s *wastageService) List(ctx context.Context, hotelID uuid.UUID, status string, limit, offset int) ([]*models.Wastage, error) {
	return s.wastageRepo.List(ctx, hotelID, status, limit, offset)
}

// AttachPhoto stores evidence for the claim in object storage and records the
// object key on the wastage.
func (s *wastageService) AttachPhoto(ctx context.Context, hotelID, wastageID uuid.UUID, reader io.Reader, size int64) (string, error) {
	if _, err := s.wastageRepo.GetByID(ctx, hotelID, wastageID); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("%s/%s-%d.jpg", hotelID.String(), wastageID.String(), time.Now().Unix())
	if err := s.objectSvc.Upload(ctx, s.photosBucket, objectName, reader, size); err != nil {
		return "", err
	}
	if err := s.wastageRepo.SetPhoto(ctx, hotelID, wastageID, objectName); err != nil {
		return "", err
	}
	return objectName, nil
}

// notifyManagers fans the pending claim out to every manager of the hotel.
// Failures are logged and swallowed.
func (s *wastageService) notifyManagers(ctx context.Context, hotelID uuid.UUID, wastage *models.Wastage, item *models.InventoryItem) {
	title := "Wastage approval required"
	message := fmt.Sprintf("%g %s of %s claimed wasted (est. value %.2f): %s",
		wastage.Qty, wastage.Unit, item.Name, wastage.EstimatedValue, wastage.Reason)
	if err := s.notifySvc.NotifyRole(ctx, hotelID, models.RoleManager, title, message,
		models.NotificationWastageApproval, &wastage.ID); err != nil {
		log.Printf("Failed to notify managers about wastage %s: %v", wastage.ID.String(), err)
	}
}

func (s *wastageService) audit(ctx context.Context, hotelID uuid.UUID, wastage *models.Wastage, actor *uuid.UUID, action string) {
	if s.auditSvc == nil {
		return
	}
	s.auditSvc.Record(ctx, hotelID, "wastages", wastage.ID.String(), action, actor, models.JSONB{
		"status":          wastage.Status,
		"estimated_value": wastage.EstimatedValue,
	})
}
