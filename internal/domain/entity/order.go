package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceScale is the scale of orders.price (numeric(10,2))
const PriceScale = 2

// Price renders as the column's text form, e.g. "10.00"
type Price struct {
	decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d}
}

func (p Price) String() string {
	return p.StringFixed(PriceScale)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

type Order struct {
	OrderID   int64     `json:"order_id"`
	UserID    int64     `json:"user_id"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	Price     Price     `json:"price"`
	Status    string    `json:"status"`
	OrderDate time.Time `json:"order_date"`
}

// OrderListResponse is the body of GET /orders/customer/:user_id
type OrderListResponse struct {
	Orders []*Order `json:"orders"`
}
