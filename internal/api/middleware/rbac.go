package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamestore/game-store-api/internal/core/domain"
)

// Require gates a route on a permission held by the request principal.
// Anonymous requests get 401; authenticated ones lacking the permission 403.
func Require(perm domain.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := PrincipalFrom(c)
			if p == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !p.Has(perm) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
