package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"

	"github.com/rogerio-castellano/resto-dashboard/internal/models"
)

type PostgresInventoryRepository struct {
	db *sql.DB
}

func NewPostgresInventoryRepository(db *sql.DB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

// GetAll retrieves every inventory item. Restock history is stored as a
// JSON document; malformed history is dropped rather than failing the load.
func (r *PostgresInventoryRepository) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, quantity, category, threshold, expires_at, restocks
		FROM inventory_items
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var (
			it           models.InventoryItem
			category     sql.NullString
			expiresAt    sql.NullTime
			restocksJSON []byte
		)
		if err := rows.Scan(&it.ID, &it.Name, &it.Quantity, &category, &it.Threshold, &expiresAt, &restocksJSON); err != nil {
			return nil, err
		}
		it.Category = category.String
		if expiresAt.Valid {
			t := expiresAt.Time
			it.ExpiresAt = &t
		}
		if len(restocksJSON) > 0 {
			if err := json.Unmarshal(restocksJSON, &it.Restocks); err != nil {
				log.Printf("inventory item %s: malformed restocks document: %v", it.ID, err)
				it.Restocks = nil
			}
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
