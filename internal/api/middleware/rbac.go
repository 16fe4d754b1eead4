package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/shop-api/internal/core/domain"
)

// RBAC lets the request through only when the role set by Session is one of
// allowedRoles. Anything else, including a missing role, is domain.ErrForbidden.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
