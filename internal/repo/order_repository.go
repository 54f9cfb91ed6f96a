package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/resto-dashboard/internal/models"
)

// OrderRepository reads order documents from the store.
type OrderRepository interface {
	// GetByDateRange returns orders whose creation timestamp falls inside
	// [start, end], endpoints included, ordered by creation time.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Order, error)
}
