package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/model"
)

func TestCustomerRepository_List(t *testing.T) {
	db := newTestDB(t)
	// inserted out of order on purpose
	for _, id := range []int64{5, 1, 4, 2, 3} {
		seedUsers(t, db, model.User{UserID: id, FirstName: "First", LastName: "Last", Email: "user@example.com"})
	}
	repo := NewCustomerRepository(db, zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name        string
		limit       int
		offset      int
		expectedIDs []int64
	}{
		{name: "first page", limit: 2, offset: 0, expectedIDs: []int64{1, 2}},
		{name: "second page", limit: 2, offset: 2, expectedIDs: []int64{3, 4}},
		{name: "partial last page", limit: 2, offset: 4, expectedIDs: []int64{5}},
		{name: "past the end", limit: 2, offset: 10, expectedIDs: []int64{}},
		{name: "limit larger than table", limit: 10, offset: 0, expectedIDs: []int64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customers, err := repo.List(ctx, tt.limit, tt.offset)
			require.NoError(t, err)
			require.NotNil(t, customers)

			ids := make([]int64, 0, len(customers))
			for _, c := range customers {
				ids = append(ids, c.UserID)
				assert.Nil(t, c.OrderCount)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestCustomerRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	seedUsers(t, db, model.User{
		UserID:     1,
		FirstName:  "Ann",
		LastName:   "Lee",
		Email:      "a@x.com",
		Gender:     "F",
		City:       "Seoul",
		Country:    "South Korea",
		PostalCode: "04524",
	})
	repo := NewCustomerRepository(db, zap.NewNop())
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		customer, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, customer)
		assert.Equal(t, int64(1), customer.UserID)
		assert.Equal(t, "Ann", customer.FirstName)
		assert.Equal(t, "Lee", customer.LastName)
		assert.Equal(t, "a@x.com", customer.Email)
		assert.Equal(t, "Seoul", customer.City)
		assert.Equal(t, "04524", customer.PostalCode)
	})

	t.Run("missing returns nil without error", func(t *testing.T) {
		customer, err := repo.GetByID(ctx, 999999)
		assert.NoError(t, err)
		assert.Nil(t, customer)
	})
}

func TestCustomerRepository_StoreFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db, zap.NewNop())
	closeDB(t, db)

	_, err := repo.List(context.Background(), 10, 0)
	assert.ErrorContains(t, err, "failed to list customers")

	_, err = repo.GetByID(context.Background(), 1)
	assert.ErrorContains(t, err, "failed to get customer")
}
