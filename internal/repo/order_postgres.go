package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/rogerio-castellano/resto-dashboard/internal/models"
)

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// GetByDateRange returns orders created within [start, end]. Document fields
// are coerced at this boundary: a missing total or source becomes the zero
// value, malformed line-item payloads become an empty list.
func (r *PostgresOrderRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, total, status, source, created_at, items
		FROM orders
		WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var (
			o         models.Order
			total     sql.NullFloat64
			status    sql.NullString
			source    sql.NullString
			itemsJSON []byte
		)
		if err := rows.Scan(&o.ID, &total, &status, &source, &o.CreatedAt, &itemsJSON); err != nil {
			return nil, err
		}
		o.Total = total.Float64
		o.Status = status.String
		o.Source = source.String
		if len(itemsJSON) > 0 {
			if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
				log.Printf("order %s: malformed items document: %v", o.ID, err)
				o.Items = nil
			}
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
