package services

import (
	"context"

	"github.com/google/uuid"

	"hotelops/internal/common"
	"hotelops/internal/models"
	"hotelops/internal/repositories"
)

type CreateMenuItemRequest struct {
	Name   string                    `json:"name"`
	Price  float64                   `json:"price"`
	Recipe []models.RecipeIngredient `json:"recipe"`
}

type UpdateMenuItemRequest struct {
	Name     string                    `json:"name"`
	Price    float64                   `json:"price"`
	Recipe   []models.RecipeIngredient `json:"recipe"`
	IsActive bool                      `json:"is_active"`
}

// MenuService is a thin collaborator surface: menu items exist so KOT lines
// can resolve names and recipes.
type MenuService interface {
	Create(ctx context.Context, hotelID uuid.UUID, req *CreateMenuItemRequest) (*models.MenuItem, error)
	Update(ctx context.Context, hotelID, id uuid.UUID, req *UpdateMenuItemRequest) (*models.MenuItem, error)
	GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.MenuItem, error)
	List(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*models.MenuItem, error)
}

type menuService struct {
	menuRepo repositories.MenuItemRepository
	itemRepo repositories.InventoryItemRepository
}

func NewMenuService(menuRepo repositories.MenuItemRepository, itemRepo repositories.InventoryItemRepository) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		itemRepo: itemRepo,
	}
}

func (s *menuService) Create(ctx context.Context, hotelID uuid.UUID, req *CreateMenuItemRequest) (*models.MenuItem, error) {
	if err := s.validateMenuInput(ctx, hotelID, req.Name, req.Price, req.Recipe); err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		ID:       uuid.New(),
		HotelID:  hotelID,
		Name:     req.Name,
		Price:    req.Price,
		Recipe:   req.Recipe,
		IsActive: true,
	}
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update replaces the menu item wholesale, recipe included. Orders already
// placed keep whatever deduction the old recipe produced.
func (s *menuService) Update(ctx context.Context, hotelID, id uuid.UUID, req *UpdateMenuItemRequest) (*models.MenuItem, error) {
	if err := s.validateMenuInput(ctx, hotelID, req.Name, req.Price, req.Recipe); err != nil {
		return nil, err
	}

	item, err := s.menuRepo.GetByID(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.Price = req.Price
	item.Recipe = req.Recipe
	item.IsActive = req.IsActive
	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *menuService) validateMenuInput(ctx context.Context, hotelID uuid.UUID, name string, price float64, recipe []models.RecipeIngredient) error {
	if err := common.ValidateRequiredString(name, "name"); err != nil {
		return err
	}
	if price < 0 {
		return common.NewValidationError("price", "cannot be negative")
	}
	for _, ingredient := range recipe {
		if ingredient.InventoryItemID == uuid.Nil {
			return common.NewValidationError("recipe", "ingredient is missing an inventory item id")
		}
		if ingredient.Quantity <= 0 {
			return common.NewValidationError("recipe", "ingredient quantity must be positive")
		}
		if ingredient.Unit == "" {
			return common.NewValidationError("recipe", "ingredient unit is required")
		}
		// Referenced inventory must exist up front so approval-time deduction
		// does not discover a dangling recipe line.
		if _, err := s.itemRepo.GetByID(ctx, hotelID, ingredient.InventoryItemID); err != nil {
			return err
		}
	}
	return nil
}

func (s *menuService) GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.MenuItem, error) {
	return s.menuRepo.GetByID(ctx, hotelID, id)
}

func (s *menuService) List(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*models.MenuItem, error) {
	return s.menuRepo.List(ctx, hotelID, limit, offset)
}
