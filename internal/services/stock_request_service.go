package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"hotelops/internal/common"
	"hotelops/internal/models"
	"hotelops/internal/repositories"
	"hotelops/internal/units"
)

type CreateStockRequestRequest struct {
	ItemID uuid.UUID `json:"item_id"`
	Qty    float64   `json:"qty"`
	Unit   string    `json:"unit"`
}

// StockRequestService runs the pending -> approved -> delivered workflow.
// Approval checks live stock but does not reserve it; the ledger deduction
// happens at delivery, which is the first irreversible step. Two approved
// requests can therefore overcommit the same item, and the loser surfaces
// InsufficientStock at delivery time.
type StockRequestService interface {
	Create(ctx context.Context, hotelID, requesterID uuid.UUID, role string, req *CreateStockRequestRequest) (*models.StockRequest, error)
	Approve(ctx context.Context, hotelID, requestID, approverID uuid.UUID) (*models.StockRequest, error)
	Deliver(ctx context.Context, hotelID, requestID, delivererID uuid.UUID) (*models.StockRequest, error)
	List(ctx context.Context, hotelID uuid.UUID, status string, limit, offset int) ([]*models.StockRequest, error)
}

type stockRequestService struct {
	requestRepo repositories.StockRequestRepository
	itemRepo    repositories.InventoryItemRepository
	ledger      StockLedger
	auditSvc    AuditLogsService
}

func NewStockRequestService(requestRepo repositories.StockRequestRepository, itemRepo repositories.InventoryItemRepository,
	ledger StockLedger, auditSvc AuditLogsService) StockRequestService {
	return &stockRequestService{
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		ledger:      ledger,
		auditSvc:    auditSvc,
	}
}

func (s *stockRequestService) Create(ctx context.Context, hotelID, requesterID uuid.UUID, role string, req *CreateStockRequestRequest) (*models.StockRequest, error) {
	// Department comes from the requester's role, never from the client.
	department, ok := models.DepartmentForRole[role]
	if !ok {
		return nil, common.NewValidationError("role", "role "+role+" cannot raise stock requests")
	}
	if req.Qty <= 0 {
		return nil, common.NewValidationError("qty", "must be positive")
	}

	item, err := s.itemRepo.GetByID(ctx, hotelID, req.ItemID)
	if err != nil {
		return nil, err
	}

	unit := req.Unit
	if unit == "" {
		unit = item.BaseUnit
	}

	request := &models.StockRequest{
		ID:          uuid.New(),
		HotelID:     hotelID,
		ItemID:      item.ID,
		RequestedBy: requesterID,
		Qty:         req.Qty,
		Unit:        unit,
		Department:  department,
		Status:      models.StockRequestStatusPending,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// Approve re-validates sufficient current stock. This is a point-in-time
// check, not a reservation.
func (s *stockRequestService) Approve(ctx context.Context, hotelID, requestID, approverID uuid.UUID) (*models.StockRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, hotelID, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != models.StockRequestStatusPending {
		return nil, common.NewValidationError("status", "only pending requests can be approved")
	}

	item, err := s.itemRepo.GetByID(ctx, hotelID, request.ItemID)
	if err != nil {
		return nil, err
	}
	qtyBase, err := units.ConvertToBase(request.Qty, request.Unit, item.BaseUnit, item.Category(), item.ConversionProfile)
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

	request.Status = models.StockRequestStatusApproved
	request.ApprovedBy = &approverID
	if err := s.requestRepo.Transition(ctx, request, models.StockRequestStatusPending); err != nil {
		return nil, err
	}

	s.audit(ctx, hotelID, request, &approverID, models.ActionApprove)
	return request, nil
}

// Deliver converts afresh (approval-time and delivery-time conversions are
// each computed independently) and performs the actual ledger deduction.
func (s *stockRequestService) Deliver(ctx context.Context, hotelID, requestID, delivererID uuid.UUID) (*models.StockRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, hotelID, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != models.StockRequestStatusApproved {
		return nil, common.NewValidationError("status", "only approved requests can be delivered")
	}

	item, err := s.itemRepo.GetByID(ctx, hotelID, request.ItemID)
	if err != nil {
		return nil, err
	}
	qtyBase, err := units.ConvertToBase(request.Qty, request.Unit, item.BaseUnit, item.Category(), item.ConversionProfile)
	if err != nil {
		return nil, err
	}

	// Claim delivery first. The guarded transition is what stops two
	// deliverers racing on the same approved request; only the winner issues
	// stock.
	request.Status = models.StockRequestStatusDelivered
	request.DeliveredBy = &delivererID
	if err := s.requestRepo.Transition(ctx, request, models.StockRequestStatusApproved); err != nil {
		return nil, err
	}

	notes := "Stock request: " + request.Department
	if _, err := s.ledger.Issue(ctx, hotelID, LedgerEntry{
		ItemID:     item.ID,
		QtyBase:    qtyBase,
		RecordedBy: delivererID,
		IssuedTo:   &request.RequestedBy,
		Notes:      &notes,
	}); err != nil {
		// Put the request back to approved so delivery can be retried.
		revert := *request
		revert.Status = models.StockRequestStatusApproved
		revert.DeliveredBy = nil
		if revertErr := s.requestRepo.Transition(ctx, &revert, models.StockRequestStatusDelivered); revertErr != nil {
			log.Printf("Failed to revert stock request %s to approved after ledger failure: %v",
				request.ID.String(), revertErr)
		}
		return nil, err
	}

	s.audit(ctx, hotelID, request, &delivererID, models.ActionDeliver)
	return request, nil
}

func (s *stockRequestService) List(ctx context.Context, hotelID uuid.UUID, status string, limit, offset int) ([]*models.StockRequest, error) {
	return s.requestRepo.List(ctx, hotelID, status, limit, offset)
}

func (s *stockRequestService) audit(ctx context.Context, hotelID uuid.UUID, request *models.StockRequest, actor *uuid.UUID, action string) {
	if s.auditSvc == nil {
		return
	}
	s.auditSvc.Record(ctx, hotelID, "stock_requests", request.ID.String(), action, actor, models.JSONB{
		"status":     request.Status,
		"department": request.Department,
	})
}
