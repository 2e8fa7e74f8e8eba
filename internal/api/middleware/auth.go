package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/content-api/internal/api/metrics"
	"github.com/inkpress/content-api/internal/core/domain"
)

// PrincipalKey is the echo context key holding the authenticated *domain.User.
const PrincipalKey = "principal"

// Authenticate gates a route behind the given strategy. On rejection the
// handler never runs and the client gets a uniform 401 regardless of the
// internal reason. On acceptance the principal is attached to the request
// context for the handler.
func Authenticate(strategy Strategy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := strategy.Authenticate(c)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues(strategy.Name()).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			c.Set(PrincipalKey, user)
			return next(c)
		}
	}
}

// Principal extracts the authenticated user attached by Authenticate.
func Principal(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(PrincipalKey).(*domain.User)
	return user, ok
}
