package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/bookmyshoot/booking-api/internal/core/domain"
)

// RBAC enforces role-based access control on routes behind Auth. Forbidden is
// distinct from unauthenticated: the caller proved who they are but lacks the
// required role. The central error handler maps domain.ErrForbidden to 403.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRoleKey).(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
