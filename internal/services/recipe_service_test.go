package services

import (
	"context"
	"testing"
	"time"

	"hotelops/internal/models"
	"hotelops/internal/units"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RecipeServiceTestSuite struct {
	suite.Suite
	mockKotRepo  *MockKotRepository
	mockMenuRepo *MockMenuItemRepository
	mockItemRepo *MockInventoryItemRepository
	mockLedger   *MockStockLedger
	service      RecipeDeductionService
	hotelID      uuid.UUID
	actorID      uuid.UUID
	ctx          context.Context
}

func (suite *RecipeServiceTestSuite) SetupTest() {
	suite.mockKotRepo = &MockKotRepository{}
	suite.mockMenuRepo = &MockMenuItemRepository{}
	suite.mockItemRepo = &MockInventoryItemRepository{}
	suite.mockLedger = &MockStockLedger{}
	suite.service = NewRecipeDeductionService(suite.mockKotRepo, suite.mockMenuRepo, suite.mockItemRepo, suite.mockLedger)
	suite.hotelID = uuid.New()
	suite.actorID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *RecipeServiceTestSuite) TearDownTest() {
	suite.mockKotRepo.AssertExpectations(suite.T())
	suite.mockMenuRepo.AssertExpectations(suite.T())
	suite.mockItemRepo.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func TestRecipeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeServiceTestSuite))
}

func (suite *RecipeServiceTestSuite) TestDeduct_ConvertsAndIssuesPerIngredient() {
	menuItemID := uuid.New()
	flourID := uuid.New()
	kotItem := &models.KotItem{
		ID:         uuid.New(),
		HotelID:    suite.hotelID,
		MenuItemID: &menuItemID,
		Name:       "Paratha",
		Qty:        3,
		Status:     models.KotItemApproved,
	}

	suite.mockKotRepo.On("GetItem", mock.Anything, suite.hotelID, kotItem.ID).Return(kotItem, nil).Once()
	suite.mockMenuRepo.On("GetByID", mock.Anything, suite.hotelID, menuItemID).Return(&models.MenuItem{
		ID:   menuItemID,
		Name: "Paratha",
		Recipe: []models.RecipeIngredient{
			{InventoryItemID: flourID, Quantity: 200, Unit: "g"},
		},
	}, nil).Once()
	suite.mockItemRepo.On("GetByID", mock.Anything, suite.hotelID, flourID).Return(&models.InventoryItem{
		ID:                  flourID,
		Name:                "Wheat Flour",
		BaseUnit:            "kg",
		MeasurementCategory: units.CategoryWeight,
	}, nil).Once()

	// 200 g per serving, 3 servings: 0.6 kg issued against the flour.
	suite.mockLedger.On("Issue", mock.Anything, suite.hotelID, mock.MatchedBy(func(entry LedgerEntry) bool {
		return entry.ItemID == flourID && entry.QtyBase > 0.5999 && entry.QtyBase < 0.6001
	})).Return(&models.InventoryTransaction{}, nil).Once()

	suite.mockKotRepo.On("SetInventoryUsage", mock.Anything, suite.hotelID, kotItem.ID,
		mock.MatchedBy(func(usage *models.InventoryUsage) bool {
			return len(usage.UsedIngredients) == 1 &&
				usage.UsedIngredients[0].ItemID == flourID &&
				!usage.DeductedAt.Equal(time.Time{})
		})).Return(nil).Once()

	err := suite.service.DeductForOrderItem(suite.ctx, suite.hotelID, kotItem.ID, suite.actorID)
	assert.NoError(suite.T(), err)
}

func (suite *RecipeServiceTestSuite) TestDeduct_IdempotentWhenUsageExists() {
	menuItemID := uuid.New()
	kotItem := &models.KotItem{
		ID:             uuid.New(),
		HotelID:        suite.hotelID,
		MenuItemID:     &menuItemID,
		Qty:            1,
		InventoryUsage: &models.InventoryUsage{DeductedAt: time.Now()},
	}

	suite.mockKotRepo.On("GetItem", mock.Anything, suite.hotelID, kotItem.ID).Return(kotItem, nil).Once()

	err := suite.service.DeductForOrderItem(suite.ctx, suite.hotelID, kotItem.ID, suite.actorID)

	assert.NoError(suite.T(), err)
	suite.mockLedger.AssertNotCalled(suite.T(), "Issue", mock.Anything, mock.Anything, mock.Anything)
	suite.mockKotRepo.AssertNotCalled(suite.T(), "SetInventoryUsage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecipeServiceTestSuite) TestDeduct_NoopForOffMenuItem() {
	kotItem := &models.KotItem{
		ID:      uuid.New(),
		HotelID: suite.hotelID,
		Name:    "Chef special",
		Qty:     1,
	}

	suite.mockKotRepo.On("GetItem", mock.Anything, suite.hotelID, kotItem.ID).Return(kotItem, nil).Once()

	err := suite.service.DeductForOrderItem(suite.ctx, suite.hotelID, kotItem.ID, suite.actorID)

	assert.NoError(suite.T(), err)
	suite.mockMenuRepo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecipeServiceTestSuite) TestDeduct_SkipsUnconvertibleIngredient() {
	menuItemID := uuid.New()
	gheeID := uuid.New()
	riceID := uuid.New()
	kotItem := &models.KotItem{
		ID:         uuid.New(),
		HotelID:    suite.hotelID,
		MenuItemID: &menuItemID,
		Name:       "Ghee Rice",
		Qty:        1,
	}

	suite.mockKotRepo.On("GetItem", mock.Anything, suite.hotelID, kotItem.ID).Return(kotItem, nil).Once()
	suite.mockMenuRepo.On("GetByID", mock.Anything, suite.hotelID, menuItemID).Return(&models.MenuItem{
		ID: menuItemID,
		Recipe: []models.RecipeIngredient{
			{InventoryItemID: gheeID, Quantity: 2, Unit: "scoop"},
			{InventoryItemID: riceID, Quantity: 150, Unit: "g"},
		},
	}, nil).Once()

	// "scoop" has no weight factor and no profile entry, so the ghee line is
	// skipped and the rice line still goes through.
	suite.mockItemRepo.On("GetByID", mock.Anything, suite.hotelID, gheeID).Return(&models.InventoryItem{
		ID:                  gheeID,
		Name:                "Ghee",
		BaseUnit:            "kg",
		MeasurementCategory: units.CategoryWeight,
	}, nil).Once()
	suite.mockItemRepo.On("GetByID", mock.Anything, suite.hotelID, riceID).Return(&models.InventoryItem{
		ID:                  riceID,
		Name:                "Rice",
		BaseUnit:            "g",
		MeasurementCategory: units.CategoryWeight,
	}, nil).Once()

	suite.mockLedger.On("Issue", mock.Anything, suite.hotelID, mock.MatchedBy(func(entry LedgerEntry) bool {
		return entry.ItemID == riceID && entry.QtyBase == 150
	})).Return(&models.InventoryTransaction{}, nil).Once()

	suite.mockKotRepo.On("SetInventoryUsage", mock.Anything, suite.hotelID, kotItem.ID,
		mock.MatchedBy(func(usage *models.InventoryUsage) bool {
			return len(usage.UsedIngredients) == 1 && usage.UsedIngredients[0].ItemID == riceID
		})).Return(nil).Once()

	err := suite.service.DeductForOrderItem(suite.ctx, suite.hotelID, kotItem.ID, suite.actorID)
	assert.NoError(suite.T(), err)
}

func (suite *RecipeServiceTestSuite) TestDeduct_SkipsIngredientOnInsufficientStock() {
	menuItemID := uuid.New()
	paneerID := uuid.New()
	kotItem := &models.KotItem{
		ID:         uuid.New(),
		HotelID:    suite.hotelID,
		MenuItemID: &menuItemID,
		Name:       "Paneer Tikka",
		Qty:        1,
	}

	suite.mockKotRepo.On("GetItem", mock.Anything, suite.hotelID, kotItem.ID).Return(kotItem, nil).Once()
	suite.mockMenuRepo.On("GetByID", mock.Anything, suite.hotelID, menuItemID).Return(&models.MenuItem{
		ID: menuItemID,
		Recipe: []models.RecipeIngredient{
			{InventoryItemID: paneerID, Quantity: 250, Unit: "g"},
		},
	}, nil).Once()
	suite.mockItemRepo.On("GetByID", mock.Anything, suite.hotelID, paneerID).Return(&models.InventoryItem{
		ID:                  paneerID,
		Name:                "Paneer",
		BaseUnit:            "g",
		MeasurementCategory: units.CategoryWeight,
	}, nil).Once()
	suite.mockLedger.On("Issue", mock.Anything, suite.hotelID, mock.Anything).
		Return(nil, assert.AnError).Once()

	// Usage is still written so the approval does not retry forever.
	suite.mockKotRepo.On("SetInventoryUsage", mock.Anything, suite.hotelID, kotItem.ID,
		mock.MatchedBy(func(usage *models.InventoryUsage) bool {
			return len(usage.UsedIngredients) == 0
		})).Return(nil).Once()

	err := suite.service.DeductForOrderItem(suite.ctx, suite.hotelID, kotItem.ID, suite.actorID)
	assert.NoError(suite.T(), err)
}
