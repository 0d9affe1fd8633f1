package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/entity"
	"github.com/wekeepgrowing/customer-dashboard/internal/usecase"
)

const msgInvalidCustomerID = "Invalid customer ID"

type CustomerHandler struct {
	usecase *usecase.CustomerUsecase
	logger  *zap.Logger
}

func NewCustomerHandler(usecase *usecase.CustomerUsecase, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// RegisterRoutes registers the customer routes
func (h *CustomerHandler) RegisterRoutes(e *echo.Echo) {
	customers := e.Group("/customers")
	customers.GET("", h.ListCustomers)
	customers.GET("/:id", h.GetCustomer)
}

// ListCustomers handles GET /customers?page=1&limit=10
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	params := entity.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	customers, err := h.usecase.ListCustomers(c.Request().Context(), params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entity.CustomerListResponse{Customers: customers})
}

// GetCustomer handles GET /customers/:id
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := parseID(c.Param("id"), msgInvalidCustomerID)
	if err != nil {
		h.logger.Debug("Rejected customer id", zap.String("id", c.Param("id")))
		return err
	}

	customer, err := h.usecase.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}
