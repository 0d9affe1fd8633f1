package database

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/customer-dashboard/internal/adapter/repository"
	domainRepo "github.com/wekeepgrowing/customer-dashboard/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	Customer domainRepo.CustomerRepository
	Order    domainRepo.OrderRepository

	db *gorm.DB
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Customer: repository.NewCustomerRepository(db, logger),
		Order:    repository.NewOrderRepository(db, logger),
		db:       db,
	}
}

// Ping checks the backing database
func (r *Repositories) Ping(ctx context.Context) error {
	return Ping(ctx, r.db)
}
