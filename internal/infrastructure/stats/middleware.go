package stats

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/wekeepgrowing/customer-dashboard/pkg/errors"
)

// Recorder stores one request event
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

const recordTimeout = 500 * time.Millisecond

// Middleware records every request after the handler chain returns.
// Recording failures are logged and never change the response.
func Middleware(recorder Recorder, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			status := c.Response().Status
			if err != nil {
				// the error handler writes the response later; derive the status it will use
				status, _ = apperrors.HTTPResponse(err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			defer cancel()

			ev := Event{
				Method: c.Request().Method,
				Route:  c.Path(),
				Status: status,
				At:     time.Now(),
			}
			if recErr := recorder.Record(ctx, ev); recErr != nil {
				logger.Warn("Failed to record request stats", zap.Error(recErr))
			}

			return err
		}
	}
}
