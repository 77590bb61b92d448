package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"hotelops/internal/models"
	"hotelops/internal/repositories"
	"hotelops/internal/units"
)

// RecipeDeductionService converts a KOT item's recipe into base-unit stock
// issues. Deduction is lenient per ingredient: a conversion or stock failure
// for one ingredient is logged and skipped so a misconfigured recipe line
// never blocks kitchen service.
type RecipeDeductionService interface {
	DeductForOrderItem(ctx context.Context, hotelID, kotItemID, actorID uuid.UUID) error
}

type recipeDeductionService struct {
	kotRepo  repositories.KotRepository
	menuRepo repositories.MenuItemRepository
	itemRepo repositories.InventoryItemRepository
	ledger   StockLedger
}

func NewRecipeDeductionService(kotRepo repositories.KotRepository, menuRepo repositories.MenuItemRepository,
	itemRepo repositories.InventoryItemRepository, ledger StockLedger) RecipeDeductionService {
	return &recipeDeductionService{
		kotRepo:  kotRepo,
		menuRepo: menuRepo,
		itemRepo: itemRepo,
		ledger:   ledger,
	}
}

func (s *recipeDeductionService) DeductForOrderItem(ctx context.Context, hotelID, kotItemID, actorID uuid.UUID) error {
	kotItem, err := s.kotRepo.GetItem(ctx, hotelID, kotItemID)
	if err != nil {
		return err
	}

	// Idempotency guard: usage is written exactly once, on the first
	// deduction. A retry or a duplicate approval trigger is a no-op.
	if kotItem.InventoryUsage != nil {
		return nil
	}
	if kotItem.MenuItemID == nil {
		return nil
	}

	menuItem, err := s.menuRepo.GetByID(ctx, hotelID, *kotItem.MenuItemID)
	if err != nil {
		return err
	}
	if len(menuItem.Recipe) == 0 {
		return nil
	}

	usage := &models.InventoryUsage{DeductedAt: time.Now()}
	for _, ingredient := range menuItem.Recipe {
		item, err := s.itemRepo.GetByID(ctx, hotelID, ingredient.InventoryItemID)
		if err != nil {
			log.Printf("Recipe deduction: ingredient %s for KOT item %s not found, skipping: %v",
				ingredient.InventoryItemID.String(), kotItemID.String(), err)
			continue
		}

		perUnit, err := units.ConvertToBase(ingredient.Quantity, ingredient.Unit, item.BaseUnit,
			item.Category(), item.ConversionProfile)
		if err != nil {
			log.Printf("Recipe deduction: cannot convert %g %s of %s, skipping: %v",
				ingredient.Quantity, ingredient.Unit, item.Name, err)
			continue
		}

		totalQty := perUnit * kotItem.Qty
		notes := "KOT: " + kotItem.Name
		_, err = s.ledger.Issue(ctx, hotelID, LedgerEntry{
			ItemID:     item.ID,
			QtyBase:    totalQty,
			RecordedBy: actorID,
			Notes:      &notes,
		})
		if err != nil {
			log.Printf("Recipe deduction: issue failed for %s (%g %s), skipping: %v",
				item.Name, totalQty, item.BaseUnit, err)
			continue
		}

		usage.UsedIngredients = append(usage.UsedIngredients, models.UsedIngredient{
			ItemID:  item.ID,
			Name:    item.Name,
			QtyUsed: totalQty,
			Unit:    item.BaseUnit,
		})
	}

	return s.kotRepo.SetInventoryUsage(ctx, hotelID, kotItemID, usage)
}
