package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a row of the orders table.
type Order struct {
	OrderID   int64           `gorm:"column:order_id;primaryKey;autoIncrement:false"`
	UserID    int64           `gorm:"column:user_id;not null;index"`
	Product   string          `gorm:"column:product;size:255"`
	Quantity  int             `gorm:"column:quantity"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Status    string          `gorm:"column:status;size:50"`
	OrderDate time.Time       `gorm:"column:order_date;index"`
}

// TableName specifies the table name for GORM
func (Order) TableName() string {
	return "orders"
}
