package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimw "github.com/salonhq/salon-system/internal/api/middleware"
	"github.com/salonhq/salon-system/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware. A
// present, non-empty role proves the middleware ran; a handler reached
// without it is a routing mistake, rejected with 401 rather than trusted.
func ctxClaims(c echo.Context) (userID int64, role domain.Role, err error) {
	role, _ = c.Get(apimw.CtxRole).(domain.Role)
	if role == "" {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get(apimw.CtxUserID).(int64)
	return userID, role, nil
}
