package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/entity"
	"github.com/wekeepgrowing/customer-dashboard/internal/domain/repository"
	apperrors "github.com/wekeepgrowing/customer-dashboard/pkg/errors"
)

// Client-facing messages
const (
	MsgCustomerNotFound      = "Customer not found"
	MsgFailedFetchCustomers  = "Failed to fetch customers"
	MsgFailedFetchCustomer   = "Failed to fetch customer"
	MsgOrderNotFound         = "Order not found"
	MsgFailedFetchOrder      = "Failed to fetch order"
	MsgFailedFetchCustOrders = "Failed to fetch orders for customer"
	MsgInvalidPagination     = "Invalid pagination parameters"
)

type CustomerUsecase struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	logger       *zap.Logger
}

func NewCustomerUsecase(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	logger *zap.Logger,
) *CustomerUsecase {
	return &CustomerUsecase{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

// ListCustomers returns one page of customers. The response carries no total or has-more marker.
func (u *CustomerUsecase) ListCustomers(ctx context.Context, params entity.PaginationParams) ([]*entity.Customer, error) {
	if err := params.Validate(); err != nil {
		return nil, apperrors.InvalidArgument(MsgInvalidPagination, err)
	}

	customers, err := u.customerRepo.List(ctx, params.Limit, params.Offset())
	if err != nil {
		return nil, apperrors.Internal(MsgFailedFetchCustomers, err)
	}

	u.logger.Debug("Listed customers",
		zap.Int("page", params.Page),
		zap.Int("limit", params.Limit),
		zap.Int("count", len(customers)),
	)

	return customers, nil
}

// GetCustomer loads a customer and attaches its order count.
// The count is a second read after the existence check.
func (u *CustomerUsecase) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := u.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(MsgFailedFetchCustomer, err)
	}
	if customer == nil {
		return nil, apperrors.NotFound(MsgCustomerNotFound)
	}

	count, err := u.orderRepo.CountByCustomer(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(MsgFailedFetchCustomer, err)
	}
	customer.OrderCount = &count

	return customer, nil
}
