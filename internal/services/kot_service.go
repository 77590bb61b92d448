package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"hotelops/internal/common"
	"hotelops/internal/models"
	"hotelops/internal/repositories"
)

// kotItemTransitions holds the allowed item status transitions. Declined,
// completed, and cancelled are terminal.
var kotItemTransitions = map[string][]string{
	models.KotItemPending:  {models.KotItemApproved, models.KotItemDeclined, models.KotItemCancelled},
	models.KotItemApproved: {models.KotItemReady, models.KotItemCancelled},
	models.KotItemReady:    {models.KotItemServed, models.KotItemCancelled},
	models.KotItemServed:   {models.KotItemCompleted},
}

func kotTransitionAllowed(from, to string) bool {
	for _, allowed := range kotItemTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// DeriveOrderStatus recomputes a KOT order's status from its items' statuses.
// Precedence, first match wins: any declined item reopens the order for
// corrective action; all served completes it; all ready readies it; all items
// past approval mean in progress; anything else leaves the order open. The
// result is independent of item evaluation order.
func DeriveOrderStatus(statuses []string) string {
	if len(statuses) == 0 {
		return models.KotOrderOpen
	}

	allServed := true
	allReady := true
	allInProgress := true
	for _, status := range statuses {
		if status == models.KotItemDeclined {
			return models.KotOrderOpen
		}
		if status != models.KotItemServed {
			allServed = false
		}
		if status != models.KotItemReady {
			allReady = false
		}
		switch status {
		case models.KotItemApproved, models.KotItemReady, models.KotItemServed:
		default:
			allInProgress = false
		}
	}

	switch {
	case allServed:
		return models.KotOrderCompleted
	case allReady:
		return models.KotOrderReady
	case allInProgress:
		return models.KotOrderInProgress
	default:
		return models.KotOrderOpen
	}
}

type AddKotItemRequest struct {
	MenuItemID *uuid.UUID `json:"menu_item_id"`
	Name       string     `json:"name"`
	Qty        float64    `json:"qty"`
}

type UpdateKotItemRequest struct {
	Status        string `json:"status"`
	DeclineReason string `json:"decline_reason"`
}

type KotService interface {
	CreateOrder(ctx context.Context, hotelID, createdBy uuid.UUID, tableNumber string) (*models.KotOrder, error)
	GetOrder(ctx context.Context, hotelID, orderID uuid.UUID) (*models.KotOrder, error)
	AddItem(ctx context.Context, hotelID, orderID uuid.UUID, req *AddKotItemRequest) (*models.KotItem, error)
	UpdateItemStatus(ctx context.Context, hotelID, itemID, actorID uuid.UUID, req *UpdateKotItemRequest) (*models.KotItem, error)
	RecomputeOrderStatus(ctx context.Context, hotelID, orderID uuid.UUID) (string, error)
	SweepOpenOrders(ctx context.Context, hotelID uuid.UUID) error
}

type kotService struct {
	kotRepo   repositories.KotRepository
	menuRepo  repositories.MenuItemRepository
	recipeSvc RecipeDeductionService
	auditSvc  AuditLogsService
}

func NewKotService(kotRepo repositories.KotRepository, menuRepo repositories.MenuItemRepository,
	recipeSvc RecipeDeductionService, auditSvc AuditLogsService) KotService {
	return &kotService{
		kotRepo:   kotRepo,
		menuRepo:  menuRepo,
		recipeSvc: recipeSvc,
		auditSvc:  auditSvc,
	}
}

func (s *kotService) CreateOrder(ctx context.Context, hotelID, createdBy uuid.UUID, tableNumber string) (*models.KotOrder, error) {
	if err := common.ValidateRequiredString(tableNumber, "table_number"); err != nil {
		return nil, err
	}

	order := &models.KotOrder{
		ID:          uuid.New(),
		HotelID:     hotelID,
		TableNumber: tableNumber,
		Status:      models.KotOrderOpen,
		CreatedBy:   createdBy,
	}
	if err := s.kotRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *kotService) GetOrder(ctx context.Context, hotelID, orderID uuid.UUID) (*models.KotOrder, error) {
	return s.kotRepo.GetOrder(ctx, hotelID, orderID)
}

func (s *kotService) AddItem(ctx context.Context, hotelID, orderID uuid.UUID, req *AddKotItemRequest) (*models.KotItem, error) {
	if req.Qty <= 0 {
		return nil, common.NewValidationError("qty", "must be positive")
	}

	name := req.Name
	if req.MenuItemID != nil {
		menuItem, err := s.menuRepo.GetByID(ctx, hotelID, *req.MenuItemID)
		if err != nil {
			return nil, err
		}
		name = menuItem.Name
	}
	if name == "" {
		return nil, common.NewValidationError("name", "is required for off-menu items")
	}

	// Make sure the order exists in this hotel before attaching.
	if _, err := s.kotRepo.GetOrder(ctx, hotelID, orderID); err != nil {
		return nil, err
	}

	item := &models.KotItem{
		ID:         uuid.New(),
		HotelID:    hotelID,
		OrderID:    orderID,
		MenuItemID: req.MenuItemID,
		Name:       name,
		Qty:        req.Qty,
		Status:     models.KotItemPending,
	}
	if err := s.kotRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	if _, err := s.RecomputeOrderStatus(ctx, hotelID, orderID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *kotService) UpdateItemStatus(ctx context.Context, hotelID, itemID, actorID uuid.UUID, req *UpdateKotItemRequest) (*models.KotItem, error) {
	if !models.ValidKotItemStatus(req.Status) {
		return nil, common.NewValidationError("status", "unknown status "+req.Status)
	}

	item, err := s.kotRepo.GetItem(ctx, hotelID, itemID)
	if err != nil {
		return nil, err
	}
	if !kotTransitionAllowed(item.Status, req.Status) {
		return nil, common.NewValidationError("status", "cannot transition from "+item.Status+" to "+req.Status)
	}

	if req.Status == models.KotItemDeclined || req.Status == models.KotItemCancelled {
		if err := common.ValidateReason(req.DeclineReason, 10, "decline_reason"); err != nil {
			return nil, err
		}
		item.DeclineReason = &req.DeclineReason
	}

	item.Status = req.Status
	if err := s.kotRepo.UpdateItemStatus(ctx, item); err != nil {
		return nil, err
	}

	// First transition into approved consumes the recipe. The usage marker
	// inside the deduction service keeps this exactly-once.
	if req.Status == models.KotItemApproved {
		if err := s.recipeSvc.DeductForOrderItem(ctx, hotelID, item.ID, actorID); err != nil {
			log.Printf("Recipe deduction failed for KOT item %s: %v", item.ID.String(), err)
		}
	}

	if s.auditSvc != nil {
		s.auditSvc.Record(ctx, hotelID, "kot_items", item.ID.String(), models.ActionUpdate, &actorID, models.JSONB{
			"status": item.Status,
		})
	}

	if _, err := s.RecomputeOrderStatus(ctx, hotelID, item.OrderID); err != nil {
		return nil, err
	}
	return item, nil
}

// RecomputeOrderStatus rebuilds the parent status from scratch from the
// current item statuses and persists it when it changed.
func (s *kotService) RecomputeOrderStatus(ctx context.Context, hotelID, orderID uuid.UUID) (string, error) {
	items, err := s.kotRepo.ListItemsByOrder(ctx, hotelID, orderID)
	if err != nil {
		return "", err
	}

	statuses := make([]string, 0, len(items))
	for _, item := range items {
		statuses = append(statuses, item.Status)
	}
	derived := DeriveOrderStatus(statuses)

	order, err := s.kotRepo.GetOrder(ctx, hotelID, orderID)
	if err != nil {
		return "", err
	}
	if order.Status != derived {
		if err := s.kotRepo.UpdateOrderStatus(ctx, hotelID, orderID, derived); err != nil {
			return "", err
		}
	}
	return derived, nil
}

// SweepOpenOrders recomputes every non-terminal order, healing any missed
// recomputation trigger.
func (s *kotService) SweepOpenOrders(ctx context.Context, hotelID uuid.UUID) error {
	orders, err := s.kotRepo.ListOpenOrders(ctx, hotelID)
	if err != nil {
		return err
	}
	for _, order := range orders {
		if _, err := s.RecomputeOrderStatus(ctx, hotelID, order.ID); err != nil {
			log.Printf("Order status sweep failed for order %s: %v", order.ID.String(), err)
		}
	}
	return nil
}
