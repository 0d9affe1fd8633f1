package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/entity"
	"github.com/wekeepgrowing/customer-dashboard/internal/domain/model"
	"github.com/wekeepgrowing/customer-dashboard/internal/domain/repository"
)

// customerRepository implements the CustomerRepository interface on the users table
type customerRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB, logger *zap.Logger) repository.CustomerRepository {
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// List returns one page of customers ordered by user_id ascending
func (r *customerRepository) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	var users []model.User

	err := r.db.WithContext(ctx).
		Order("user_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		r.logger.Error("failed to list customers",
			zap.Int("limit", limit),
			zap.Int("offset", offset),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*entity.Customer, 0, len(users))
	for i := range users {
		customers = append(customers, userToEntity(&users[i]))
	}
	return customers, nil
}

// GetByID looks up a single customer by primary key
func (r *customerRepository) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var user model.User

	err := r.db.WithContext(ctx).Where("user_id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("failed to get customer",
			zap.Int64("customer_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return userToEntity(&user), nil
}

func userToEntity(m *model.User) *entity.Customer {
	return &entity.Customer{
		UserID:     m.UserID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		Gender:     m.Gender,
		Address:    m.Address,
		City:       m.City,
		State:      m.State,
		Country:    m.Country,
		PostalCode: m.PostalCode,
	}
}
