package common

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	UserIDKey  contextKey = "user_id"
	HotelIDKey contextKey = "hotel_id"
	RoleKey    contextKey = "role"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// CreateErrorResponse creates a standardized error response
func CreateErrorResponse(code string, message string, details map[string]string) *ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Details = details
	return &resp
}

// SendValidationError sends a validation error response
func SendValidationError(c echo.Context, field, message string) error {
	details := map[string]string{
		field: message,
	}
	return c.JSON(http.StatusBadRequest, CreateErrorResponse("VALIDATION_ERROR", "Validation failed", details))
}

// SendClientError sends a client error response
func SendClientError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, CreateErrorResponse("CLIENT_ERROR", message, nil))
}

// SendServerError sends a server error response
func SendServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, CreateErrorResponse("SERVER_ERROR", message, nil))
}

// SendNotFoundError sends a not found error response
func SendNotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, CreateErrorResponse("NOT_FOUND", fmt.Sprintf("%s not found", resource), nil))
}

// SendUnauthorizedError sends an unauthorized error response
func SendUnauthorizedError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, CreateErrorResponse("UNAUTHORIZED", "Unauthorized access", nil))
}

// SendDomainError maps a domain error onto the standardized response shape.
// Insufficient stock includes the numeric shortfall so the operator can
// correct the request immediately.
func SendDomainError(c echo.Context, err error) error {
	var stockErr *InsufficientStockError
	if errors.As(err, &stockErr) {
		details := map[string]string{
			"available": fmt.Sprintf("%g", stockErr.Available),
			"requested": fmt.Sprintf("%g", stockErr.Requested),
		}
		return c.JSON(http.StatusBadRequest, CreateErrorResponse("INSUFFICIENT_STOCK", stockErr.Error(), details))
	}

	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return c.JSON(http.StatusNotFound, CreateErrorResponse("NOT_FOUND", notFound.Error(), nil))
	}

	var validation *ValidationError
	if errors.As(err, &validation) {
		return SendValidationError(c, validation.Field, validation.Message)
	}

	return SendServerError(c, "operation could not be completed")
}

// ValidateUUID validates UUID format. The error is a ValidationError so that
// handlers funneling it through SendDomainError answer 400, not 500.
func ValidateUUID(idStr string, fieldName string) (uuid.UUID, error) {
	if strings.TrimSpace(idStr) == "" {
		return uuid.Nil, NewValidationError(fieldName, "is required")
	}

	id, err := uuid.Parse(strings.TrimSpace(idStr))
	if err != nil {
		return uuid.Nil, NewValidationError(fieldName, fmt.Sprintf("has invalid UUID format: %v", err))
	}

	return id, nil
}

// ValidateRequiredString validates required string fields
func ValidateRequiredString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fieldName, "is required")
	}
	return nil
}

// ValidateReason enforces the minimum free-text length used for decline and
// rejection reasons.
func ValidateReason(reason string, minLen int, fieldName string) error {
	if len(strings.TrimSpace(reason)) < minLen {
		return NewValidationError(fieldName, fmt.Sprintf("must be at least %d characters", minLen))
	}
	return nil
}

// ValidatePaginationParams validates pagination parameters
func ValidatePaginationParams(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// SafeString safely handles string pointer operations
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetUserIDFromContext extracts the user ID from the request context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetHotelIDFromContext extracts the hotel ID from the request context
func GetHotelIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	hotelID, ok := ctx.Value(HotelIDKey).(uuid.UUID)
	return hotelID, ok
}

// GetRoleFromContext extracts the acting role name from the request context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}
