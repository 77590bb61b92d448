package handlers

import (
	"net/http"

	"hotelops/internal/common"
	"hotelops/internal/services"

	"github.com/labstack/echo/v4"
)

// NotificationHandlers handles in-app notification HTTP requests.
type NotificationHandlers struct {
	notifySvc services.NotificationService
}

func NewNotificationHandlers(notifySvc services.NotificationService) *NotificationHandlers {
	return &NotificationHandlers{notifySvc: notifySvc}
}

// ListNotificationsRequest represents query parameters for the listing
type ListNotificationsRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// ListNotifications handles listing the caller's notifications.
func (h *NotificationHandlers) ListNotifications(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req ListNotificationsRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	limit, offset := common.ValidatePaginationParams(req.Limit, req.Offset)

	notifications, err := h.notifySvc.ListForUser(ctx, hotelID, userID, limit, offset)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"limit":         limit,
		"offset":        offset,
	})
}

// MarkNotificationRead handles marking one notification read.
func (h *NotificationHandlers) MarkNotificationRead(c echo.Context) error {
	ctx := c.Request().Context()
	hotelID, ok := common.GetHotelIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	notificationID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendDomainError(c, err)
	}

	if err := h.notifySvc.MarkRead(ctx, hotelID, notificationID); err != nil {
		return common.SendDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
