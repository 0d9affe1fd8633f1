package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/entity"
	"github.com/wekeepgrowing/customer-dashboard/internal/usecase"
)

const msgInvalidOrderID = "Invalid order ID"

type OrderHandler struct {
	usecase *usecase.OrderUsecase
	logger  *zap.Logger
}

func NewOrderHandler(usecase *usecase.OrderUsecase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// RegisterRoutes registers the order routes. The static /customer segment wins over :order_id.
func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	orders := e.Group("/orders")
	orders.GET("/customer/:user_id", h.ListCustomerOrders)
	orders.GET("/:order_id", h.GetOrder)
}

// ListCustomerOrders handles GET /orders/customer/:user_id
func (h *OrderHandler) ListCustomerOrders(c echo.Context) error {
	customerID, err := parseID(c.Param("user_id"), msgInvalidCustomerID)
	if err != nil {
		return err
	}

	orders, err := h.usecase.ListCustomerOrders(c.Request().Context(), customerID)
	if err != nil {
		return err
	}

	h.logger.Debug("Retrieved customer orders",
		zap.Int64("customer_id", customerID),
		zap.Int("order_count", len(orders)),
	)

	return c.JSON(http.StatusOK, entity.OrderListResponse{Orders: orders})
}

// GetOrder handles GET /orders/:order_id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := parseID(c.Param("order_id"), msgInvalidOrderID)
	if err != nil {
		return err
	}

	order, err := h.usecase.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}
