package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/entity"
	"github.com/wekeepgrowing/customer-dashboard/internal/domain/repository"
	apperrors "github.com/wekeepgrowing/customer-dashboard/pkg/errors"
)

type OrderUsecase struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	logger       *zap.Logger
}

func NewOrderUsecase(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	logger *zap.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

// ListCustomerOrders returns a customer's orders, most recent first.
//
// A missing customer is NOT_FOUND and the orders table is not queried. An existing
// customer without orders yields an empty, non-nil slice.
func (u *OrderUsecase) ListCustomerOrders(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, apperrors.Internal(MsgFailedFetchCustOrders, err)
	}
	if customer == nil {
		return nil, apperrors.NotFound(MsgCustomerNotFound)
	}

	orders, err := u.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperrors.Internal(MsgFailedFetchCustOrders, err)
	}
	if orders == nil {
		orders = []*entity.Order{}
	}

	u.logger.Debug("Listed customer orders",
		zap.Int64("customer_id", customerID),
		zap.Int("count", len(orders)),
	)

	return orders, nil
}

// GetOrder returns a single order verbatim.
func (u *OrderUsecase) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(MsgFailedFetchOrder, err)
	}
	if order == nil {
		return nil, apperrors.NotFound(MsgOrderNotFound)
	}
	return order, nil
}
