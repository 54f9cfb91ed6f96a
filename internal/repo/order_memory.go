package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/resto-dashboard/internal/models"
)

// InMemoryOrderRepository is an in-memory implementation of OrderRepository.
type InMemoryOrderRepository struct {
	orders []models.Order
}

// NewInMemoryOrderRepository creates a new instance of InMemoryOrderRepository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{orders: []models.Order{}}
}

// Add seeds an order.
func (r *InMemoryOrderRepository) Add(order models.Order) {
	r.orders = append(r.orders, order)
}

// GetByDateRange returns orders created within [start, end], inclusive.
func (r *InMemoryOrderRepository) GetByDateRange(_ context.Context, start, end time.Time) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if !o.CreatedAt.Before(start) && !o.CreatedAt.After(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *InMemoryOrderRepository) Clear() {
	r.orders = []models.Order{}
}
