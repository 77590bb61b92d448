package middleware

import (
	"net/http"

	"hotelops/internal/common"
	"hotelops/internal/models"

	"github.com/labstack/echo/v4"
)

// Permission names guarded by RequirePermission.
const (
	PermInventoryRead       = "inventory:read"
	PermInventoryWrite      = "inventory:write"
	PermWastageCreate       = "wastage:create"
	PermWastageApprove      = "wastage:approve"
	PermStockRequestCreate  = "stock_request:create"
	PermStockRequestApprove = "stock_request:approve"
	PermStockRequestDeliver = "stock_request:deliver"
	PermKotCreate           = "kot:create"
	PermKotUpdate           = "kot:update"
	PermMenuManage          = "menu:manage"
)

// rolePermissions is the static capability table. Owner and manager hold
// every permission; the remaining roles are scoped to their station.
var rolePermissions = map[string][]string{
	models.RoleOwner: {
		PermInventoryRead, PermInventoryWrite, PermWastageCreate, PermWastageApprove,
		PermStockRequestCreate, PermStockRequestApprove, PermStockRequestDeliver,
		PermKotCreate, PermKotUpdate, PermMenuManage,
	},
	models.RoleManager: {
		PermInventoryRead, PermInventoryWrite, PermWastageCreate, PermWastageApprove,
		PermStockRequestCreate, PermStockRequestApprove, PermStockRequestDeliver,
		PermKotCreate, PermKotUpdate, PermMenuManage,
	},
	models.RoleStorekeeper: {
		PermInventoryRead, PermInventoryWrite, PermWastageCreate,
		PermStockRequestApprove, PermStockRequestDeliver,
	},
	models.RoleKitchenStaff: {
		PermInventoryRead, PermWastageCreate, PermStockRequestCreate, PermKotUpdate,
	},
	models.RoleBartender: {
		PermInventoryRead, PermWastageCreate, PermStockRequestCreate, PermKotUpdate,
	},
	models.RoleBarista: {
		PermInventoryRead, PermWastageCreate, PermStockRequestCreate, PermKotUpdate,
	},
	models.RoleWaiter: {
		PermInventoryRead, PermKotCreate, PermKotUpdate,
	},
}

// RoleHasPermission checks the capability table.
func RoleHasPermission(role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// RequirePermission rejects requests whose authenticated role lacks the
// given permission. It must run after JWTMiddleware.
func RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := common.GetRoleFromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}
			if !RoleHasPermission(role, permission) {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}
			return next(c)
		}
	}
}
