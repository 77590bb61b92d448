package handlers

import (
	"net/http"
	"strings"

	"hotelops/internal/common"
	"hotelops/internal/models"
	"hotelops/internal/repositories"
	"hotelops/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// InventoryHandlers handles inventory item and ledger HTTP requests.
type InventoryHandlers struct {
	inventorySvc services.InventoryService
	ledger       services.StockLedger
	txnRepo      repositories.InventoryTransactionRepository
}

func NewInventoryHandlers(inventorySvc services.InventoryService, ledger services.StockLedger,
	txnRepo repositories.InventoryTransactionRepository) *InventoryHandlers {
	return &InventoryHandlers{
		inventorySvc: inventorySvc,
		ledger:       ledger,
		txnRepo:      txnRepo,
	}
}

// CreateItem handles creating an inventory item.
func (h *InventoryHandlers) CreateItem(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req services.CreateInventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	item, err := h.inventorySvc.Create(ctx, hotelID, &req)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// ListItemsRequest represents query parameters for listing items
type ListItemsRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// ListItems handles listing the hotel's inventory items.
func (h *InventoryHandlers) ListItems(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req ListItemsRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	items, err := h.inventorySvc.List(ctx, hotelID, limit, offset)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

// GetItem handles fetching one inventory item by ID.
func (h *InventoryHandlers) GetItem(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	itemID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendDomainError(c, err)
	}

	item, err := h.inventorySvc.GetByID(ctx, hotelID, itemID)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteItem handles soft-deleting an inventory item.
func (h *InventoryHandlers) DeleteItem(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	itemID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendDomainError(c, err)
	}

	if err := h.inventorySvc.Delete(ctx, hotelID, itemID); err != nil {
		return common.SendDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SearchItems handles advanced inventory search with sorting and filters.
func (h *InventoryHandlers) SearchItems(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var filter models.InventorySearchFilter
	if err := c.Bind(&filter); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	filter.Limit, filter.Offset = common.ValidatePaginationParams(filter.Limit, filter.Offset)

	items, err := h.inventorySvc.Search(ctx, hotelID, &filter)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// LowStockItems handles listing items at or below their reorder level.
func (h *InventoryHandlers) LowStockItems(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	items, err := h.inventorySvc.LowStock(ctx, hotelID)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// CreateTransactionRequest represents a manual ledger entry request. Qty is
// expressed in the item's base unit and is always positive; the transaction
// type determines the direction.
type CreateTransactionRequest struct {
	ItemID          uuid.UUID  `json:"item_id"`
	TransactionType string     `json:"transaction_type"`
	Qty             float64    `json:"qty"`
	QtyPackage      *float64   `json:"qty_package"`
	IssuedTo        *uuid.UUID `json:"issued_to"`
	Notes           *string    `json:"notes"`
}

// CreateTransaction handles recording a manual stock movement through the
// ledger. Adjustments and wastages require an explanatory note; receives
// require a supplier or invoice reference in the note field.
func (h *InventoryHandlers) CreateTransaction(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if !models.ValidTransactionType(req.TransactionType) {
		return common.SendValidationError(c, "transaction_type", "unknown transaction type")
	}
	if req.ItemID == uuid.Nil {
		return common.SendValidationError(c, "item_id", "is required")
	}
	switch req.TransactionType {
	case models.TxnAdjustment, models.TxnWastage:
		if req.Notes == nil || strings.TrimSpace(*req.Notes) == "" {
			return common.SendValidationError(c, "notes", "requires an explanatory note")
		}
	case models.TxnReceive:
		if req.Notes == nil || strings.TrimSpace(*req.Notes) == "" {
			return common.SendValidationError(c, "notes", "requires a supplier or invoice reference")
		}
	}

	txn, err := h.ledger.Apply(ctx, hotelID, req.TransactionType, services.LedgerEntry{
		ItemID:     req.ItemID,
		QtyBase:    req.Qty,
		QtyPackage: req.QtyPackage,
		RecordedBy: userID,
		IssuedTo:   req.IssuedTo,
		Notes:      req.Notes,
	})
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, txn)
}

// ListTransactionsRequest represents query parameters for the ledger listing
type ListTransactionsRequest struct {
	ItemID string `query:"item_id"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// ListTransactions handles listing ledger entries, optionally for one item.
func (h *InventoryHandlers) ListTransactions(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req ListTransactionsRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	var (
		txns []*models.InventoryTransaction
		err  error
	)
	if req.ItemID != "" {
		itemID, uuidErr := common.ValidateUUID(req.ItemID, "item_id")
		if uuidErr != nil {
			return common.SendDomainError(c, uuidErr)
		}
		txns, err = h.txnRepo.ListByItem(ctx, hotelID, itemID, limit, offset)
	} else {
		txns, err = h.txnRepo.List(ctx, hotelID, limit, offset)
	}
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"transactions": txns,
		"limit":        limit,
		"offset":       offset,
	})
}
