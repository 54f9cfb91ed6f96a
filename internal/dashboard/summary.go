package dashboard

import (
	"sort"
	"time"

	"github.com/rogerio-castellano/resto-dashboard/internal/models"
)

// TopItemsLimit caps the ranked best-sellers list.
const TopItemsLimit = 5

// expiringWindowDays is the look-ahead for the expiring-soon alert, counted
// from the reference instant passed to ComputeSummary.
const expiringWindowDays = 7

// ItemCount is one entry of the top-sellers ranking.
type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DailySales is one point of the revenue-by-date series. Date carries the
// parsed calendar date so callers sort and compare on it rather than on the
// rendered label.
type DailySales struct {
	Date    time.Time `json:"date"`
	Label   string    `json:"label"`
	Revenue float64   `json:"revenue"`
}

// Summary is the derived dashboard view-model. It is recomputed from scratch
// on every load and never mutated in place.
type Summary struct {
	TotalSales        float64                `json:"total_sales"`
	TotalOrders       int                    `json:"total_orders"`
	CustomerAppOrders int                    `json:"customer_app_orders"`
	POSOrders         int                    `json:"pos_app_orders"`
	TopItems          []ItemCount            `json:"top_items"`
	SalesByDate       []DailySales           `json:"sales_by_date"`
	LowStock          []models.InventoryItem `json:"low_stock"`
	ExpiringSoon      []models.InventoryItem `json:"expiring_soon"`
}

// Range is a dashboard query window.
type Range struct {
	Start time.Time
	End   time.Time
}

// Normalize widens the range to full day boundaries: start of day for Start,
// end of day for End.
func (r Range) Normalize() Range {
	s := dateOnly(r.Start)
	e := dateOnly(r.End).AddDate(0, 0, 1).Add(-time.Millisecond)
	return Range{Start: s, End: e}
}

// Contains reports whether t falls inside the range, endpoints included.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ComputeSummary derives the dashboard view-model from order and inventory
// records for the given window. It is a pure function: inputs are never
// mutated and the result is fully determined by its arguments. The expiring
// window is anchored on now, not on the query range.
func ComputeSummary(orders []models.Order, items []models.InventoryItem, rng Range, now time.Time) Summary {
	var s Summary

	var filtered []models.Order
	for _, o := range orders {
		if rng.Contains(o.CreatedAt) {
			filtered = append(filtered, o)
		}
	}

	s.TotalOrders = len(filtered)
	for _, o := range filtered {
		s.TotalSales += o.Total
		switch o.Source {
		case models.SourceCustomerApp:
			s.CustomerAppOrders++
		case models.SourcePOS:
			s.POSOrders++
		}
	}

	s.TopItems = topItems(filtered, TopItemsLimit)
	s.SalesByDate = salesByDate(filtered)
	s.LowStock = LowStockItems(items)
	s.ExpiringSoon = ExpiringSoonItems(items, now)

	return s
}

// topItems accumulates line-item quantities by name in encounter order and
// returns the n largest. The sort is stable so equal quantities keep their
// first-appearance order.
func topItems(orders []models.Order, n int) []ItemCount {
	index := make(map[string]int)
	counts := []ItemCount{}
	for _, o := range orders {
		for _, it := range o.Items {
			i, ok := index[it.Name]
			if !ok {
				index[it.Name] = len(counts)
				counts = append(counts, ItemCount{Name: it.Name})
				i = len(counts) - 1
			}
			counts[i].Quantity += it.Quantity
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Quantity > counts[j].Quantity
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// salesByDate groups order revenue by the calendar date (local timezone) of
// the creation timestamp, sorted ascending on the parsed date value.
func salesByDate(orders []models.Order) []DailySales {
	index := make(map[time.Time]int)
	series := []DailySales{}
	for _, o := range orders {
		day := dateOnly(o.CreatedAt)
		i, ok := index[day]
		if !ok {
			index[day] = len(series)
			series = append(series, DailySales{Date: day, Label: day.Format("Jan 2, 2006")})
			i = len(series) - 1
		}
		series[i].Revenue += o.Total
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}

// LowStockItems returns items whose quantity is at or below their threshold.
// The boundary quantity == threshold is included.
func LowStockItems(items []models.InventoryItem) []models.InventoryItem {
	low := []models.InventoryItem{}
	for _, it := range items {
		if it.Quantity <= it.Threshold {
			low = append(low, it)
		}
	}
	return low
}

// ExpiringSoonItems returns items whose direct expiration date, or any
// restock batch's expiration date, falls within the next seven days of now,
// today included and strictly past dates excluded.
func ExpiringSoonItems(items []models.InventoryItem, now time.Time) []models.InventoryItem {
	expiring := []models.InventoryItem{}
	for _, it := range items {
		if _, ok := EarliestExpiry(it, now); ok {
			expiring = append(expiring, it)
		}
	}
	return expiring
}

// EarliestExpiry returns the soonest expiration date of the item that falls
// inside the expiring window, for per-item detail display.
func EarliestExpiry(it models.InventoryItem, now time.Time) (time.Time, bool) {
	today := dateOnly(now)
	limit := today.AddDate(0, 0, expiringWindowDays)

	var best time.Time
	found := false
	consider := func(t time.Time) {
		d := dateOnly(t)
		if d.Before(today) || d.After(limit) {
			return
		}
		if !found || d.Before(best) {
			best = d
			found = true
		}
	}

	if it.ExpiresAt != nil {
		consider(*it.ExpiresAt)
	}
	for _, re := range it.Restocks {
		consider(re.ExpiresAt)
	}
	return best, found
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
