package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const bannerText = "✅ Customer Order Dashboard API is running. Use /customers or /customers/:id"

// PingFunc reports store reachability
type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	service string
	ping    PingFunc
	logger  *zap.Logger
}

func NewHealthHandler(service string, ping PingFunc, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		ping:    ping,
		logger:  logger,
	}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Banner)
	e.GET("/health", h.Health)
}

// Banner handles GET /
func (h *HealthHandler) Banner(c echo.Context) error {
	return c.String(http.StatusOK, bannerText)
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	status := http.StatusOK
	body := map[string]string{
		"status":   "healthy",
		"service":  h.service,
		"database": "up",
	}

	if h.ping != nil {
		if err := h.ping(c.Request().Context()); err != nil {
			h.logger.Warn("Database ping failed", zap.Error(err))
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
			body["database"] = "down"
		}
	}

	return c.JSON(status, body)
}
