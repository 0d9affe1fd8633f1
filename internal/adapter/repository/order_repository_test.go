package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/model"
)

func TestOrderRepository_ListByCustomer_MostRecentFirst(t *testing.T) {
	db := newTestDB(t)
	seedUsers(t, db, model.User{UserID: 1}, model.User{UserID: 2})
	seedOrders(t, db,
		order(10, 1, "2024-01-01"),
		order(11, 1, "2024-03-01"),
		order(12, 1, "2024-02-01"),
		order(13, 2, "2024-04-01"),
	)
	repo := NewOrderRepository(db, zap.NewNop())

	orders, err := repo.ListByCustomer(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.True(t, orders[0].OrderDate.Equal(date("2024-03-01")))
	assert.True(t, orders[1].OrderDate.Equal(date("2024-02-01")))
	assert.True(t, orders[2].OrderDate.Equal(date("2024-01-01")))
	for _, o := range orders {
		assert.Equal(t, int64(1), o.UserID)
	}
}

func TestOrderRepository_ListByCustomer_SameDateTieBreak(t *testing.T) {
	db := newTestDB(t)
	seedUsers(t, db, model.User{UserID: 1})
	seedOrders(t, db,
		order(20, 1, "2024-05-05"),
		order(22, 1, "2024-05-05"),
		order(21, 1, "2024-05-05"),
	)
	repo := NewOrderRepository(db, zap.NewNop())

	orders, err := repo.ListByCustomer(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []int64{22, 21, 20}, []int64{orders[0].OrderID, orders[1].OrderID, orders[2].OrderID})
}

func TestOrderRepository_ListByCustomer_NoOrders(t *testing.T) {
	db := newTestDB(t)
	seedUsers(t, db, model.User{UserID: 1})
	repo := NewOrderRepository(db, zap.NewNop())

	orders, err := repo.ListByCustomer(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderRepository_CountByCustomer(t *testing.T) {
	db := newTestDB(t)
	seedUsers(t, db, model.User{UserID: 1}, model.User{UserID: 2}, model.User{UserID: 3})
	seedOrders(t, db,
		order(1, 1, "2024-01-01"),
		order(2, 1, "2024-01-02"),
		order(3, 1, "2024-01-03"),
		order(4, 2, "2024-01-04"),
	)
	repo := NewOrderRepository(db, zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		customerID int64
		expected   int64
	}{
		{customerID: 1, expected: 3},
		{customerID: 2, expected: 1},
		{customerID: 3, expected: 0},
	}

	for _, tt := range tests {
		count, err := repo.CountByCustomer(ctx, tt.customerID)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, count, "customer %d", tt.customerID)
	}
}

func TestOrderRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	seedUsers(t, db, model.User{UserID: 7})
	seedOrders(t, db, model.Order{
		OrderID:   42,
		UserID:    7,
		Product:   "Keyboard",
		Quantity:  2,
		Price:     decimal.RequireFromString("49.50"),
		Status:    "Shipped",
		OrderDate: date("2024-06-15"),
	})
	repo := NewOrderRepository(db, zap.NewNop())
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		o, err := repo.GetByID(ctx, 42)
		require.NoError(t, err)
		require.NotNil(t, o)
		assert.Equal(t, int64(42), o.OrderID)
		assert.Equal(t, int64(7), o.UserID)
		assert.Equal(t, "Keyboard", o.Product)
		assert.Equal(t, 2, o.Quantity)
		assert.True(t, decimal.RequireFromString("49.5").Equal(o.Price.Decimal), "price %s", o.Price)
		assert.Equal(t, "49.50", o.Price.String())
		assert.Equal(t, "Shipped", o.Status)
		assert.True(t, o.OrderDate.Equal(date("2024-06-15")))
	})

	t.Run("missing returns nil without error", func(t *testing.T) {
		o, err := repo.GetByID(ctx, 43)
		assert.NoError(t, err)
		assert.Nil(t, o)
	})
}

func TestOrderRepository_StoreFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db, zap.NewNop())
	closeDB(t, db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 1)
	assert.ErrorContains(t, err, "failed to get order")

	_, err = repo.ListByCustomer(ctx, 1)
	assert.ErrorContains(t, err, "failed to list customer orders")

	_, err = repo.CountByCustomer(ctx, 1)
	assert.ErrorContains(t, err, "failed to count customer orders")
}
