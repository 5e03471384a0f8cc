package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jongleur-maersk/tracking-portal/internal/api/metrics"
)

// Limiter is the throttle the lookup routes consult per client.
type Limiter interface {
	Allow(ctx context.Context, clientKey string) (bool, error)
}

// RateLimit throttles lookups per client IP. A limiter outage fails open so
// the tracking page stays usable when Redis is down.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests,
					"Too many lookups. Please wait a moment and try again.")
			}
			return next(c)
		}
	}
}
