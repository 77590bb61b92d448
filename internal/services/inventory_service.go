package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"hotelops/internal/caching"
	"hotelops/internal/common"
	"hotelops/internal/models"
	"hotelops/internal/repositories"
	"hotelops/internal/units"
)

type CreateInventoryItemRequest struct {
	Name                string                   `json:"name"`
	SKU                 string                   `json:"sku"`
	Unit                string                   `json:"unit"`
	BaseUnit            string                   `json:"base_unit"`
	PackageUnit         *string                  `json:"package_unit"`
	BaseUnitsPerPackage *float64                 `json:"base_units_per_package"`
	InitialStock        float64                  `json:"initial_stock"`
	ReorderLevel        float64                  `json:"reorder_level"`
	CostPerUnit         float64                  `json:"cost_per_unit"`
	MeasurementCategory string                   `json:"measurement_category"`
	ConversionProfile   models.ConversionProfile `json:"conversion_profile"`
}

type InventoryService interface {
	Create(ctx context.Context, hotelID uuid.UUID, req *CreateInventoryItemRequest) (*models.InventoryItem, error)
	GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.InventoryItem, error)
	List(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*models.InventoryItem, error)
	LowStock(ctx context.Context, hotelID uuid.UUID) ([]*models.InventoryItem, error)
	Search(ctx context.Context, hotelID uuid.UUID, filter *models.InventorySearchFilter) ([]*models.InventoryItem, error)
	Delete(ctx context.Context, hotelID, id uuid.UUID) error
}

type inventoryService struct {
	itemRepo repositories.InventoryItemRepository
	cacheSvc caching.CacheService
}

func NewInventoryService(itemRepo repositories.InventoryItemRepository, cacheSvc caching.CacheService) InventoryService {
	return &inventoryService{itemRepo: itemRepo, cacheSvc: cacheSvc}
}

func (s *inventoryService) Create(ctx context.Context, hotelID uuid.UUID, req *CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return nil, common.NewValidationError("name", "is required")
	}
	if err := common.ValidateRequiredString(req.BaseUnit, "base_unit"); err != nil {
		return nil, common.NewValidationError("base_unit", "is required")
	}
	if req.InitialStock < 0 {
		return nil, common.NewValidationError("initial_stock", "cannot be negative")
	}
	if req.CostPerUnit < 0 {
		return nil, common.NewValidationError("cost_per_unit", "cannot be negative")
	}

	if req.SKU != "" {
		existing, err := s.itemRepo.GetBySKU(ctx, hotelID, req.SKU)
		var notFound *common.NotFoundError
		if err != nil && !errors.As(err, &notFound) {
			return nil, err
		}
		if existing != nil {
			return nil, common.NewValidationError("sku", "an item with this SKU already exists")
		}
	}

	category := units.MeasurementCategory(req.MeasurementCategory)
	if category == "" {
		// Derived from the base unit unless the item declares custom units.
		category = units.CategoryForUnit(req.BaseUnit)
	} else if !units.ValidCategory(req.MeasurementCategory) {
		return nil, common.NewValidationError("measurement_category", "unknown measurement category")
	}

	unit := req.Unit
	if unit == "" {
		unit = req.BaseUnit
	}

	item := &models.InventoryItem{
		ID:                  uuid.New(),
		HotelID:             hotelID,
		Name:                req.Name,
		SKU:                 req.SKU,
		Unit:                unit,
		BaseUnit:            req.BaseUnit,
		PackageUnit:         req.PackageUnit,
		BaseUnitsPerPackage: req.BaseUnitsPerPackage,
		StockQty:            req.InitialStock,
		BaseStockQty:        req.InitialStock,
		ReorderLevel:        req.ReorderLevel,
		CostPerUnit:         req.CostPerUnit,
		MeasurementCategory: category,
		ConversionProfile:   req.ConversionProfile,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.InventoryItem, error) {
	// Snapshot read: the cache may lag the ledger and must never gate a
	// mutation.
	if s.cacheSvc != nil {
		if cached, err := s.cacheSvc.GetItem(ctx, hotelID, id); cached != nil {
			return cached, nil
		} else if err != nil {
			log.Printf("Cache error for item %s: %v", id.String(), err)
		}
	}

	item, err := s.itemRepo.GetByID(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	if s.cacheSvc != nil {
		if cacheErr := s.cacheSvc.SetItem(ctx, hotelID, item, 5*time.Minute); cacheErr != nil {
			log.Printf("Failed to cache item %s: %v", id.String(), cacheErr)
		}
	}
	return item, nil
}

func (s *inventoryService) List(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*models.InventoryItem, error) {
	return s.itemRepo.List(ctx, hotelID, limit, offset)
}

func (s *inventoryService) LowStock(ctx context.Context, hotelID uuid.UUID) ([]*models.InventoryItem, error) {
	return s.itemRepo.LowStock(ctx, hotelID)
}

func (s *inventoryService) Search(ctx context.Context, hotelID uuid.UUID, filter *models.InventorySearchFilter) ([]*models.InventoryItem, error) {
	return s.itemRepo.Search(ctx, hotelID, filter)
}

func (s *inventoryService) Delete(ctx context.Context, hotelID, id uuid.UUID) error {
	if err := s.itemRepo.SoftDelete(ctx, hotelID, id); err != nil {
		return err
	}
	if s.cacheSvc != nil {
		if cacheErr := s.cacheSvc.DeleteItem(ctx, hotelID, id); cacheErr != nil {
			log.Printf("Failed to invalidate cache for deleted item %s: %v", id.String(), cacheErr)
		}
	}
	return nil
}
