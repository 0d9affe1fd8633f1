package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/entity"
	apperrors "github.com/wekeepgrowing/customer-dashboard/pkg/errors"
)

// StatsReader exposes accumulated request statistics
type StatsReader interface {
	Snapshot(ctx context.Context) (*entity.RequestStats, error)
}

type StatsHandler struct {
	reader StatsReader
}

func NewStatsHandler(reader StatsReader) *StatsHandler {
	return &StatsHandler{reader: reader}
}

func (h *StatsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/internal/stats", h.GetStats)
}

// GetStats handles GET /internal/stats
func (h *StatsHandler) GetStats(c echo.Context) error {
	snapshot, err := h.reader.Snapshot(c.Request().Context())
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrUnavailable, "Failed to fetch stats", err)
	}
	return c.JSON(http.StatusOK, snapshot)
}
