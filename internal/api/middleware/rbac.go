package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonhq/salon-system/internal/api/metrics"
	"github.com/salonhq/salon-system/internal/core/domain"
)

// RBAC enforces the per-operation role allow-list. It runs after Auth, reads
// the role claim from the context, and denies with 403 when the role is
// outside the allow-list. The check touches no state and leaks nothing about
// the resource being acted on.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
