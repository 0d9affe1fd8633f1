package entity

// Customer is the API shape of a users row.
//
// OrderCount is only populated by the single-customer lookup; list responses omit it.
type Customer struct {
	UserID     int64  `json:"user_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Gender     string `json:"gender"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	OrderCount *int64 `json:"order_count,omitempty"`
}

// CustomerListResponse is the body of GET /customers
type CustomerListResponse struct {
	Customers []*Customer `json:"customers"`
}
