package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/wekeepgrowing/customer-dashboard/internal/config"
)

const msgTooManyRequests = "Too many requests"

// newRateLimiter limits each client IP with an in-memory token bucket
func newRateLimiter(cfg config.RateLimitConfig, logger *zap.Logger) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.Rate),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, map[string]string{"error": http.StatusText(http.StatusForbidden)})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Debug("Rate limit exceeded", zap.String("client", identifier))
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": msgTooManyRequests})
		},
	})
}
