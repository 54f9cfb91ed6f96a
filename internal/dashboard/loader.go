package dashboard

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rogerio-castellano/resto-dashboard/internal/repo"
)

// Loader fetches the records for a window and recomputes the summary from
// scratch. Every load is tagged with a monotonically increasing sequence
// number; a load that finishes after a newer one has already published is
// discarded, so a slow response can never overwrite fresher data.
type Loader struct {
	orders    repo.OrderRepository
	inventory repo.InventoryRepository

	seq atomic.Uint64

	mu        sync.Mutex
	published uint64
	current   Summary
	loaded    bool
}

func NewLoader(orders repo.OrderRepository, inventory repo.InventoryRepository) *Loader {
	return &Loader{orders: orders, inventory: inventory}
}

// Load computes the summary for rng. The range is normalized to full day
// boundaries before querying. On a stale completion the fresher, already
// published summary is returned instead.
func (l *Loader) Load(ctx context.Context, rng Range) (Summary, error) {
	token := l.seq.Add(1)
	rng = rng.Normalize()

	orders, err := l.orders.GetByDateRange(ctx, rng.Start, rng.End)
	if err != nil {
		return Summary{}, err
	}
	items, err := l.inventory.GetAll(ctx)
	if err != nil {
		return Summary{}, err
	}

	// One reference instant for the whole aggregation; the expiring window
	// must not drift between items.
	s := ComputeSummary(orders, items, rng, time.Now())

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded && token < l.published {
		return l.current, nil
	}
	l.published = token
	l.current = s
	l.loaded = true
	return s, nil
}

// Current returns the last published summary, if any.
func (l *Loader) Current() (Summary, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current, l.loaded
}
