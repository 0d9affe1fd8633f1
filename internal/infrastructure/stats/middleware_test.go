package stats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/wekeepgrowing/customer-dashboard/pkg/errors"
)

type fakeRecorder struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (f *fakeRecorder) Record(_ context.Context, ev Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return f.err
}

func newMiddlewareEcho(recorder Recorder, log *zap.Logger) *echo.Echo {
	e := echo.New()
	e.Use(Middleware(recorder, log))
	e.GET("/customers/:id", func(c echo.Context) error {
		if c.Param("id") == "0" {
			return apperrors.NotFound("Customer not found")
		}
		return c.JSON(http.StatusOK, map[string]string{"id": c.Param("id")})
	})
	return e
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestMiddleware_RecordsRouteAndStatus(t *testing.T) {
	recorder := &fakeRecorder{}
	e := newMiddlewareEcho(recorder, zap.NewNop())

	serve(e, "/customers/7")
	serve(e, "/customers/0")

	require.Len(t, recorder.events, 2)
	assert.Equal(t, "GET", recorder.events[0].Method)
	assert.Equal(t, "/customers/:id", recorder.events[0].Route)
	assert.Equal(t, http.StatusOK, recorder.events[0].Status)
	assert.False(t, recorder.events[0].At.IsZero())
	assert.Equal(t, http.StatusNotFound, recorder.events[1].Status)
}

func TestMiddleware_RecorderFailureKeepsResponse(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	recorder := &fakeRecorder{err: errors.New("redis down")}
	e := newMiddlewareEcho(recorder, zap.New(core))

	rec := serve(e, "/customers/7")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"7"}`, rec.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("Failed to record request stats").Len())
}
