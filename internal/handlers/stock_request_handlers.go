package handlers

import (
	"net/http"

	"hotelops/internal/common"
	"hotelops/internal/services"

	"github.com/labstack/echo/v4"
)

// StockRequestHandlers handles department stock request HTTP requests.
type StockRequestHandlers struct {
	requestSvc services.StockRequestService
}

func NewStockRequestHandlers(requestSvc services.StockRequestService) *StockRequestHandlers {
	return &StockRequestHandlers{requestSvc: requestSvc}
}

// CreateRequest handles a department staff member requesting stock. The
// department is derived from the caller's role, never from the payload.
func (h *StockRequestHandlers) CreateRequest(c echo.Context) error {
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

	var req services.CreateStockRequestRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	request, err := h.requestSvc.Create(ctx, hotelID, userID, role, &req)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, request)
}

// ApproveRequest handles approving a pending stock request. Approval checks
// live stock but reserves nothing.
func (h *StockRequestHandlers) ApproveRequest(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	requestID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendDomainError(c, err)
	}

	request, err := h.requestSvc.Approve(ctx, hotelID, requestID, userID)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, request)
}

// DeliverRequest handles marking an approved request delivered, issuing the
// stock through the ledger.
func (h *StockRequestHandlers) DeliverRequest(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	requestID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendDomainError(c, err)
	}

	request, err := h.requestSvc.Deliver(ctx, hotelID, requestID, userID)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, request)
}

// ListRequestsRequest represents query parameters for the request listing
type ListRequestsRequest struct {
	Status string `query:"status"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// ListRequests handles listing stock requests, optionally by status.
func (h *StockRequestHandlers) ListRequests(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req ListRequestsRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	requests, err := h.requestSvc.List(ctx, hotelID, req.Status, limit, offset)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"requests": requests,
		"limit":    limit,
		"offset":   offset,
	})
}
