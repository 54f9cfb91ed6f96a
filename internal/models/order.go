package models

import "time"

// Recognized order source channels. Orders tagged with anything else count
// toward neither channel bucket on the dashboard.
const (
	SourceCustomerApp = "customer"
	SourcePOS         = "pos"
)

// OrderItem is a single line item of an order.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order represents a completed transaction record from the order store.
type Order struct {
	ID        string      `json:"id"`
	Total     float64     `json:"total"`
	Items     []OrderItem `json:"items"`
	Status    string      `json:"status"`
	Source    string      `json:"source,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
