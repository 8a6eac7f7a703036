package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gamestore/game-store-api/internal/api/metrics"
	"github.com/gamestore/game-store-api/internal/core/domain"
	"github.com/gamestore/game-store-api/internal/core/ports"
)

// principalKey is the context key under which the authenticated principal is
// stored for the lifetime of a single request.
const principalKey = "principal"

// Auth runs once per request. Requests without an Authorization header pass
// through anonymously; the permission gate decides downstream whether that is
// acceptable. A present but invalid token is rejected outright, as is a valid
// token whose subject no longer resolves to a stored user.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

			subject, err := tokens.Validate(token)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenRejectionsTotal.WithLabelValues("unknown_user").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			c.Set(principalKey, domain.NewPrincipal(user))
			return next(c)
		}
	}
}

// PrincipalFrom returns the request principal, or nil for anonymous requests.
func PrincipalFrom(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}
