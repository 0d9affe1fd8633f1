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

// orderRepository implements the OrderRepository interface on the orders table
type orderRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB, logger *zap.Logger) repository.OrderRepository {
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	var order model.Order

	err := r.db.WithContext(ctx).Where("order_id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("failed to get order",
			zap.Int64("order_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return orderToEntity(&order), nil
}

// ListByCustomer returns every order of a customer, most recent first.
// Orders on the same date are ordered by order_id descending.
func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Order, error) {
	var orders []model.Order

	err := r.db.WithContext(ctx).
		Where("user_id = ?", customerID).
		Order("order_date DESC").
		Order("order_id DESC").
		Find(&orders).Error
	if err != nil {
		r.logger.Error("failed to list customer orders",
			zap.Int64("customer_id", customerID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list customer orders: %w", err)
	}

	result := make([]*entity.Order, 0, len(orders))
	for i := range orders {
		result = append(result, orderToEntity(&orders[i]))
	}
	return result, nil
}

// CountByCustomer counts the orders referencing a customer
func (r *orderRepository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("user_id = ?", customerID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("failed to count customer orders",
			zap.Int64("customer_id", customerID),
			zap.Error(err))
		return 0, fmt.Errorf("failed to count customer orders: %w", err)
	}

	return count, nil
}

func orderToEntity(m *model.Order) *entity.Order {
	return &entity.Order{
		OrderID:   m.OrderID,
		UserID:    m.UserID,
		Product:   m.Product,
		Quantity:  m.Quantity,
		Price:     entity.NewPrice(m.Price),
		Status:    m.Status,
		OrderDate: m.OrderDate,
	}
}
