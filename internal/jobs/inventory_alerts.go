package jobs

import (
	"context"
	"fmt"
	"log"

	"hotelops/internal/models"
	"hotelops/internal/repositories"
	"hotelops/internal/services"

	"github.com/google/uuid"
)

// LowStockAlertService scans a hotel's inventory for items at or below their
// reorder level and notifies the storekeeper and managers.
type LowStockAlertService struct {
	itemRepo  repositories.InventoryItemRepository
	notifySvc services.NotificationService
}

type LowStockAlert struct {
	HotelID      uuid.UUID
	ItemID       uuid.UUID
	ItemName     string
	CurrentStock float64
	ReorderLevel float64
	BaseUnit     string
}

func NewLowStockAlertService(itemRepo repositories.InventoryItemRepository,
	notifySvc services.NotificationService) *LowStockAlertService {
	return &LowStockAlertService{
		itemRepo:  itemRepo,
		notifySvc: notifySvc,
	}
}

// CheckLowStock returns the alerts for one hotel without sending anything.
func (a *LowStockAlertService) CheckLowStock(ctx context.Context, hotelID uuid.UUID) ([]LowStockAlert, error) {
	items, err := a.itemRepo.LowStock(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	alerts := make([]LowStockAlert, 0, len(items))
	for _, item := range items {
		alerts = append(alerts, LowStockAlert{
			HotelID:      hotelID,
			ItemID:       item.ID,
			ItemName:     item.Name,
			CurrentStock: item.BaseStockQty,
			ReorderLevel: item.ReorderLevel,
			BaseUnit:     item.BaseUnit,
		})
	}
	return alerts, nil
}

// ProcessHotel sends a notification per low-stock item. Notification failures
// are logged and do not abort the run.
func (a *LowStockAlertService) ProcessHotel(ctx context.Context, hotelID uuid.UUID) error {
	alerts, err := a.CheckLowStock(ctx, hotelID)
	if err != nil {
		return err
	}

	for _, alert := range alerts {
		itemID := alert.ItemID
		message := fmt.Sprintf("%s is low: %g %s remaining (reorder at %g)",
			alert.ItemName, alert.CurrentStock, alert.BaseUnit, alert.ReorderLevel)
		err := a.notifySvc.NotifyRole(ctx, hotelID, models.RoleStorekeeper,
			"Low stock alert", message, models.NotificationLowStock, &itemID)
		if err != nil {
			log.Printf("Failed to send low stock alert for item %s: %v", alert.ItemID.String(), err)
		}
	}

	if len(alerts) > 0 {
		log.Printf("Sent %d low stock alerts for hotel %s", len(alerts), hotelID.String())
	}
	return nil
}
