package repository

import (
	"context"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/entity"
)

// OrderRepository reads the orders table.
// GetByID returns nil, nil when no row matches.
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error)
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)
}
