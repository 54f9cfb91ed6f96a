package repo

import (
	"context"

	"github.com/rogerio-castellano/resto-dashboard/internal/models"
)

// InMemoryInventoryRepository is an in-memory implementation of InventoryRepository.
type InMemoryInventoryRepository struct {
	items []models.InventoryItem
}

// NewInMemoryInventoryRepository creates a new instance of InMemoryInventoryRepository.
func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{items: []models.InventoryItem{}}
}

// Add seeds an inventory item.
func (r *InMemoryInventoryRepository) Add(item models.InventoryItem) {
	r.items = append(r.items, item)
}

// GetAll retrieves every inventory item.
func (r *InMemoryInventoryRepository) GetAll(_ context.Context) ([]models.InventoryItem, error) {
	return r.items, nil
}

func (r *InMemoryInventoryRepository) Clear() {
	r.items = []models.InventoryItem{}
}
