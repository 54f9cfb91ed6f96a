package models

import "time"

// RestockEvent records a quantity added to an item's stock together with the
// expiration date of that batch.
type RestockEvent struct {
	Date      time.Time `json:"date"`
	Quantity  int       `json:"quantity"`
	ExpiresAt time.Time `json:"expires_at"`
	Damages   int       `json:"damages,omitempty"`
}

// InventoryItem represents a stocked ingredient or product.
type InventoryItem struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Quantity  int            `json:"quantity"`
	Category  string         `json:"category,omitempty"`
	Threshold int            `json:"threshold"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
	Restocks  []RestockEvent `json:"restocks,omitempty"`
}
