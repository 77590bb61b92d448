package handlers

import (
	"net/http"

	"hotelops/internal/common"
	"hotelops/internal/services"

	"github.com/labstack/echo/v4"
)

// WastageHandlers handles wastage recording and the approval workflow.
type WastageHandlers struct {
	wastageSvc services.WastageService
}

func NewWastageHandlers(wastageSvc services.WastageService) *WastageHandlers {
	return &WastageHandlers{wastageSvc: wastageSvc}
}

// CreateWastage handles recording a wastage event. High-value wastage from
// non-owner roles parks in pending approval; everything else deducts stock
// immediately.
func (h *WastageHandlers) CreateWastage(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	role, ok := common.GetRoleFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req services.CreateWastageRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	wastage, err := h.wastageSvc.Create(ctx, hotelID, userID, role, &req)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, wastage)
}

// ApproveWastage handles approving a pending wastage, deducting stock at
// approval time.
func (h *WastageHandlers) ApproveWastage(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	wastageID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendDomainError(c, err)
	}

	wastage, err := h.wastageSvc.Approve(ctx, hotelID, wastageID, userID)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, wastage)
}

// RejectWastageRequest carries the mandatory rejection reason
type RejectWastageRequest struct {
	Reason string `json:"reason"`
}

// RejectWastage handles rejecting a pending wastage. No stock moves.
func (h *WastageHandlers) RejectWastage(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	wastageID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendDomainError(c, err)
	}

	var req RejectWastageRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	wastage, err := h.wastageSvc.Reject(ctx, hotelID, wastageID, userID, req.Reason)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, wastage)
}

// ListWastagesRequest represents query parameters for the wastage listing
type ListWastagesRequest struct {
	Status string `query:"status"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// ListWastages handles listing wastage records, optionally by status.
func (h *WastageHandlers) ListWastages(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req ListWastagesRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	wastages, err := h.wastageSvc.List(ctx, hotelID, req.Status, limit, offset)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"wastages": wastages,
		"limit":    limit,
		"offset":   offset,
	})
}

// UploadPhoto handles attaching photo evidence to a wastage record.
func (h *WastageHandlers) UploadPhoto(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	wastageID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendDomainError(c, err)
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return common.SendClientError(c, "Photo file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return common.SendServerError(c, "Could not read uploaded file")
	}
	defer file.Close()

	objectName, err := h.wastageSvc.AttachPhoto(ctx, hotelID, wastageID, file, fileHeader.Size)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"photo_object": objectName,
	})
}
