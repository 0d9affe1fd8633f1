package repository

import (
	"context"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/entity"
)

// CustomerRepository reads customers from the users table.
// GetByID returns nil, nil when no row matches.
type CustomerRepository interface {
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
}
