package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/model"
)

// newTestDB opens an in-memory SQLite database with the users and orders tables.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Order{}))
	return db
}

func seedUsers(t *testing.T, db *gorm.DB, users ...model.User) {
	t.Helper()
	require.NoError(t, db.Create(&users).Error)
}

func seedOrders(t *testing.T, db *gorm.DB, orders ...model.Order) {
	t.Helper()
	require.NoError(t, db.Create(&orders).Error)
}

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func order(id, userID int64, day string) model.Order {
	return model.Order{
		OrderID:   id,
		UserID:    userID,
		Product:   "Widget",
		Quantity:  1,
		Price:     decimal.RequireFromString("19.99"),
		Status:    "Complete",
		OrderDate: date(day),
	}
}
