package services

import (
	"context"
	"io"
	"time"

	"hotelops/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock repositories and services shared by the service test suites.

type MockInventoryItemRepository struct {
	mock.Mock
}

func (m *MockInventoryItemRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryItemRepository) GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, hotelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) GetBySKU(ctx context.Context, hotelID uuid.UUID, sku string) (*models.InventoryItem, error) {
	args := m.Called(ctx, hotelID, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) List(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, hotelID, limit, offset)
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) LowStock(ctx context.Context, hotelID uuid.UUID) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) Search(ctx context.Context, hotelID uuid.UUID, filter *models.InventorySearchFilter) ([]*models.InventoryItem, error) {
	args := m.Called(ctx, hotelID, filter)
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryItemRepository) SoftDelete(ctx context.Context, hotelID, id uuid.UUID) error {
	args := m.Called(ctx, hotelID, id)
	return args.Error(0)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetItem(ctx context.Context, hotelID, itemID uuid.UUID) (*models.InventoryItem, error) {
	args := m.Called(ctx, hotelID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockCacheService) SetItem(ctx context.Context, hotelID uuid.UUID, item *models.InventoryItem, ttl time.Duration) error {
	args := m.Called(ctx, hotelID, item, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteItem(ctx context.Context, hotelID, itemID uuid.UUID) error {
	args := m.Called(ctx, hotelID, itemID)
	return args.Error(0)
}

type MockKotRepository struct {
	mock.Mock
}

func (m *MockKotRepository) CreateOrder(ctx context.Context, order *models.KotOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockKotRepository) GetOrder(ctx context.Context, hotelID, id uuid.UUID) (*models.KotOrder, error) {
	args := m.Called(ctx, hotelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KotOrder), args.Error(1)
}

func (m *MockKotRepository) ListOpenOrders(ctx context.Context, hotelID uuid.UUID) ([]*models.KotOrder, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]*models.KotOrder), args.Error(1)
}

func (m *MockKotRepository) UpdateOrderStatus(ctx context.Context, hotelID, id uuid.UUID, status string) error {
	args := m.Called(ctx, hotelID, id, status)
	return args.Error(0)
}

func (m *MockKotRepository) CreateItem(ctx context.Context, item *models.KotItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockKotRepository) GetItem(ctx context.Context, hotelID, id uuid.UUID) (*models.KotItem, error) {
	args := m.Called(ctx, hotelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KotItem), args.Error(1)
}

func (m *MockKotRepository) ListItemsByOrder(ctx context.Context, hotelID, orderID uuid.UUID) ([]*models.KotItem, error) {
	args := m.Called(ctx, hotelID, orderID)
	return args.Get(0).([]*models.KotItem), args.Error(1)
}

func (m *MockKotRepository) UpdateItemStatus(ctx context.Context, item *models.KotItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockKotRepository) SetInventoryUsage(ctx context.Context, hotelID, itemID uuid.UUID, usage *models.InventoryUsage) error {
	args := m.Called(ctx, hotelID, itemID, usage)
	return args.Error(0)
}

type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.MenuItem, error) {
	args := m.Called(ctx, hotelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) List(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*models.MenuItem, error) {
	args := m.Called(ctx, hotelID, limit, offset)
	return args.Get(0).([]*models.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type MockWastageRepository struct {
	mock.Mock
}

func (m *MockWastageRepository) Create(ctx context.Context, wastage *models.Wastage) error {
	args := m.Called(ctx, wastage)
	return args.Error(0)
}

func (m *MockWastageRepository) GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.Wastage, error) {
	args := m.Called(ctx, hotelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wastage), args.Error(1)
}

func (m *MockWastageRepository) List(ctx context.Context, hotelID uuid.UUID, status string, limit, offset int) ([]*models.Wastage, error) {
	args := m.Called(ctx, hotelID, status, limit, offset)
	return args.Get(0).([]*models.Wastage), args.Error(1)
}

func (m *MockWastageRepository) Transition(ctx context.Context, wastage *models.Wastage, fromStatus string) error {
	args := m.Called(ctx, wastage, fromStatus)
	return args.Error(0)
}

func (m *MockWastageRepository) SetPhoto(ctx context.Context, hotelID, id uuid.UUID, objectName string) error {
	args := m.Called(ctx, hotelID, id, objectName)
	return args.Error(0)
}

type MockStockRequestRepository struct {
	mock.Mock
}

func (m *MockStockRequestRepository) Create(ctx context.Context, request *models.StockRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockStockRequestRepository) GetByID(ctx context.Context, hotelID, id uuid.UUID) (*models.StockRequest, error) {
	args := m.Called(ctx, hotelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StockRequest), args.Error(1)
}

func (m *MockStockRequestRepository) List(ctx context.Context, hotelID uuid.UUID, status string, limit, offset int) ([]*models.StockRequest, error) {
	args := m.Called(ctx, hotelID, status, limit, offset)
	return args.Get(0).([]*models.StockRequest), args.Error(1)
}

func (m *MockStockRequestRepository) Transition(ctx context.Context, request *models.StockRequest, fromStatus string) error {
	args := m.Called(ctx, request, fromStatus)
	return args.Error(0)
}

type MockStockLedger struct {
	mock.Mock
}

func (m *MockStockLedger) Receive(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error) {
	args := m.Called(ctx, hotelID, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryTransaction), args.Error(1)
}

func (m *MockStockLedger) Issue(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error) {
	args := m.Called(ctx, hotelID, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryTransaction), args.Error(1)
}

func (m *MockStockLedger) Return(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error) {
	args := m.Called(ctx, hotelID, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryTransaction), args.Error(1)
}

func (m *MockStockLedger) Wastage(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error) {
	args := m.Called(ctx, hotelID, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryTransaction), args.Error(1)
}

func (m *MockStockLedger) Adjust(ctx context.Context, hotelID uuid.UUID, entry LedgerEntry) (*models.InventoryTransaction, error) {
	args := m.Called(ctx, hotelID, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryTransaction), args.Error(1)
}

func (m *MockStockLedger) Apply(ctx context.Context, hotelID uuid.UUID, transactionType string, entry LedgerEntry) (*models.InventoryTransaction, error) {
	args := m.Called(ctx, hotelID, transactionType, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryTransaction), args.Error(1)
}

type MockRecipeDeductionService struct {
	mock.Mock
}

func (m *MockRecipeDeductionService) DeductForOrderItem(ctx context.Context, hotelID, kotItemID, actorID uuid.UUID) error {
	args := m.Called(ctx, hotelID, kotItemID, actorID)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, hotelID, userID uuid.UUID, title, message, notificationType string, relatedID *uuid.UUID) error {
	args := m.Called(ctx, hotelID, userID, title, message, notificationType, relatedID)
	return args.Error(0)
}

func (m *MockNotificationService) NotifyRole(ctx context.Context, hotelID uuid.UUID, role, title, message, notificationType string, relatedID *uuid.UUID) error {
	args := m.Called(ctx, hotelID, role, title, message, notificationType, relatedID)
	return args.Error(0)
}

func (m *MockNotificationService) ListForUser(ctx context.Context, hotelID, userID uuid.UUID, limit, offset int) ([]*models.Notification, error) {
	args := m.Called(ctx, hotelID, userID, limit, offset)
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, hotelID, id uuid.UUID) error {
	args := m.Called(ctx, hotelID, id)
	return args.Error(0)
}

type MockAuditLogsService struct {
	mock.Mock
}

func (m *MockAuditLogsService) Record(ctx context.Context, hotelID uuid.UUID, tableName, recordID, action string, changedBy *uuid.UUID, newValues models.JSONB) {
	m.Called(ctx, hotelID, tableName, recordID, action, changedBy, newValues)
}

func (m *MockAuditLogsService) List(ctx context.Context, hotelID uuid.UUID, tableName string, limit, offset int) ([]*models.AuditLog, error) {
	args := m.Called(ctx, hotelID, tableName, limit, offset)
	return args.Get(0).([]*models.AuditLog), args.Error(1)
}

type MockObjectStorageService struct {
	mock.Mock
}

func (m *MockObjectStorageService) Upload(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64) error {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize)
	return args.Error(0)
}

func (m *MockObjectStorageService) GetPresignedURL(bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorageService) Delete(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}

func (m *MockObjectStorageService) EnsureBucketExists(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}
