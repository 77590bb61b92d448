package handlers

import (
	"net/http"

	"hotelops/internal/common"
	"hotelops/internal/services"

	"github.com/labstack/echo/v4"
)

// MenuHandlers handles menu item HTTP requests.
type MenuHandlers struct {
	menuSvc services.MenuService
}

func NewMenuHandlers(menuSvc services.MenuService) *MenuHandlers {
	return &MenuHandlers{menuSvc: menuSvc}
}

// CreateMenuItem handles creating a menu item with its recipe.
func (h *MenuHandlers) CreateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req services.CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	item, err := h.menuSvc.Create(ctx, hotelID, &req)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem handles replacing a menu item's name, price, recipe and
// active flag.
func (h *MenuHandlers) UpdateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	itemID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendDomainError(c, err)
	}

	var req services.UpdateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	item, err := h.menuSvc.Update(ctx, hotelID, itemID, &req)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// ListMenuItemsRequest represents query parameters for the menu listing
type ListMenuItemsRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// ListMenuItems handles listing the hotel's menu items.
func (h *MenuHandlers) ListMenuItems(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req ListMenuItemsRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	items, err := h.menuSvc.List(ctx, hotelID, limit, offset)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"menu_items": items,
		"limit":      limit,
		"offset":     offset,
	})
}
