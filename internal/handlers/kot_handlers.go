package handlers

import (
	"net/http"

	"hotelops/internal/common"
	"hotelops/internal/services"

	"github.com/labstack/echo/v4"
)

// KotHandlers handles kitchen order ticket HTTP requests.
type KotHandlers struct {
	kotSvc services.KotService
}

func NewKotHandlers(kotSvc services.KotService) *KotHandlers {
	return &KotHandlers{kotSvc: kotSvc}
}

// CreateOrderRequest represents a new KOT order payload
type CreateOrderRequest struct {
	TableNumber string `json:"table_number"`
}

// CreateOrder handles opening a new KOT order for a table.
func (h *KotHandlers) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	order, err := h.kotSvc.CreateOrder(ctx, hotelID, userID, req.TableNumber)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, order)
}

// GetOrder handles fetching one order with its items.
func (h *KotHandlers) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	orderID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendDomainError(c, err)
	}

	order, err := h.kotSvc.GetOrder(ctx, hotelID, orderID)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

// AddItem handles adding a line to an open order.
func (h *KotHandlers) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	orderID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendDomainError(c, err)
	}

	var req services.AddKotItemRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	item, err := h.kotSvc.AddItem(ctx, hotelID, orderID, &req)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateItemStatus handles moving a KOT item through its lifecycle. The first
// transition into approved deducts the recipe from inventory.
func (h *KotHandlers) UpdateItemStatus(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	itemID, err := common.ValidateUUID(c.Param("itemId"), "itemId")
	if err != nil {
		return common.SendDomainError(c, err)
	}

	var req services.UpdateKotItemRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	item, err := h.kotSvc.UpdateItemStatus(ctx, hotelID, itemID, userID, &req)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}
