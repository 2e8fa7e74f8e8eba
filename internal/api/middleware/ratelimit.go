package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/content-api/internal/api/metrics"
)

// AttemptLimiter bounds repeated attempts per key within a time window.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// ThrottleLogin rejects requests with 429 once the caller's address has
// exhausted its attempt budget. A limiter failure fails open: authentication
// still runs and decides the outcome.
func ThrottleLogin(limiter AttemptLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				return next(c)
			}
			if !ok {
				metrics.LoginsTotal.WithLabelValues("throttled").Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
			}
			return next(c)
		}
	}
}
