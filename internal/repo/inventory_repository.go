package repo

import (
	"context"

	"github.com/rogerio-castellano/resto-dashboard/internal/models"
)

// InventoryRepository reads inventory documents from the store.
type InventoryRepository interface {
	GetAll(ctx context.Context) ([]models.InventoryItem, error)
}
