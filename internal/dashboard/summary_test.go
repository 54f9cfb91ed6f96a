package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/resto-dashboard/internal/models"
)

var day1 = time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
var day2 = day1.AddDate(0, 0, 1)

func at(day time.Time, hour int) time.Time {
	return day.Add(time.Duration(hour) * time.Hour)
}

func twoDayRange() Range {
	return Range{Start: day1, End: day2}.Normalize()
}

func TestComputeSummary_Scenario(t *testing.T) {
	orders := []models.Order{
		{ID: "o1", Total: 100, Source: models.SourceCustomerApp, CreatedAt: at(day1, 9)},
		{ID: "o2", Total: 50, Source: models.SourcePOS, CreatedAt: at(day1, 13)},
		{ID: "o3", Total: 75, Source: models.SourceCustomerApp, CreatedAt: at(day2, 11)},
	}

	s := ComputeSummary(orders, nil, twoDayRange(), time.Now())

	require.Equal(t, 225.0, s.TotalSales)
	require.Equal(t, 3, s.TotalOrders)
	require.Equal(t, 2, s.CustomerAppOrders)
	require.Equal(t, 1, s.POSOrders)

	require.Len(t, s.SalesByDate, 2)
	require.Equal(t, day1, s.SalesByDate[0].Date)
	require.Equal(t, 150.0, s.SalesByDate[0].Revenue)
	require.Equal(t, day2, s.SalesByDate[1].Date)
	require.Equal(t, 75.0, s.SalesByDate[1].Revenue)
}

func TestComputeSummary_FiltersOutsideRange(t *testing.T) {
	orders := []models.Order{
		{ID: "in", Total: 10, CreatedAt: at(day1, 12)},
		{ID: "before", Total: 99, CreatedAt: day1.AddDate(0, 0, -1)},
		{ID: "after", Total: 99, CreatedAt: day2.AddDate(0, 0, 1)},
	}

	s := ComputeSummary(orders, nil, twoDayRange(), time.Now())

	require.Equal(t, 10.0, s.TotalSales)
	require.Equal(t, 1, s.TotalOrders)
}

func TestComputeSummary_RangeEndpointsInclusive(t *testing.T) {
	rng := twoDayRange()
	orders := []models.Order{
		{ID: "first", Total: 1, CreatedAt: rng.Start},
		{ID: "last", Total: 2, CreatedAt: rng.End},
	}

	s := ComputeSummary(orders, nil, rng, time.Now())

	require.Equal(t, 2, s.TotalOrders)
	require.Equal(t, 3.0, s.TotalSales)
}

func TestComputeSummary_RevenueAdditivity(t *testing.T) {
	a := []models.Order{
		{ID: "a1", Total: 12.5, CreatedAt: at(day1, 8)},
		{ID: "a2", Total: 30, CreatedAt: at(day1, 19)},
	}
	b := []models.Order{
		{ID: "b1", Total: 7.25, CreatedAt: at(day2, 10)},
	}

	union := append(append([]models.Order{}, a...), b...)
	rng := twoDayRange()

	sa := ComputeSummary(a, nil, rng, time.Now())
	sb := ComputeSummary(b, nil, rng, time.Now())
	su := ComputeSummary(union, nil, rng, time.Now())

	require.Equal(t, sa.TotalSales+sb.TotalSales, su.TotalSales)
	require.Equal(t, sa.TotalOrders+sb.TotalOrders, su.TotalOrders)
}

func TestComputeSummary_UnrecognizedSourceCountsNeither(t *testing.T) {
	orders := []models.Order{
		{ID: "o1", Total: 5, Source: "kiosk", CreatedAt: at(day1, 9)},
		{ID: "o2", Total: 5, CreatedAt: at(day1, 10)},
	}

	s := ComputeSummary(orders, nil, twoDayRange(), time.Now())

	require.Equal(t, 2, s.TotalOrders)
	require.Equal(t, 0, s.CustomerAppOrders)
	require.Equal(t, 0, s.POSOrders)
}

func TestComputeSummary_TopItemsRankingAndTruncation(t *testing.T) {
	orders := []models.Order{
		{CreatedAt: at(day1, 9), Items: []models.OrderItem{
			{Name: "latte", Quantity: 3},
			{Name: "espresso", Quantity: 1},
			{Name: "croissant", Quantity: 2},
		}},
		{CreatedAt: at(day1, 12), Items: []models.OrderItem{
			{Name: "latte", Quantity: 2},
			{Name: "bagel", Quantity: 4},
			{Name: "muffin", Quantity: 1},
			{Name: "scone", Quantity: 1},
			{Name: "tea", Quantity: 1},
		}},
	}

	s := ComputeSummary(orders, nil, twoDayRange(), time.Now())

	require.Len(t, s.TopItems, TopItemsLimit)
	require.Equal(t, ItemCount{Name: "latte", Quantity: 5}, s.TopItems[0])
	require.Equal(t, ItemCount{Name: "bagel", Quantity: 4}, s.TopItems[1])
	require.Equal(t, ItemCount{Name: "croissant", Quantity: 2}, s.TopItems[2])
}

func TestComputeSummary_TopItemsTieBreakIsInsertionOrder(t *testing.T) {
	orders := []models.Order{
		{CreatedAt: at(day1, 9), Items: []models.OrderItem{
			{Name: "espresso", Quantity: 2},
			{Name: "latte", Quantity: 2},
			{Name: "mocha", Quantity: 2},
		}},
	}

	s := ComputeSummary(orders, nil, twoDayRange(), time.Now())

	require.Equal(t, []ItemCount{
		{Name: "espresso", Quantity: 2},
		{Name: "latte", Quantity: 2},
		{Name: "mocha", Quantity: 2},
	}, s.TopItems)
}

func TestComputeSummary_TopItemsStableUnderOrderPermutation(t *testing.T) {
	o1 := models.Order{CreatedAt: at(day1, 9), Items: []models.OrderItem{
		{Name: "latte", Quantity: 2}, {Name: "bagel", Quantity: 1},
	}}
	o2 := models.Order{CreatedAt: at(day1, 11), Items: []models.OrderItem{
		{Name: "bagel", Quantity: 2}, {Name: "latte", Quantity: 1},
	}}

	fwd := ComputeSummary([]models.Order{o1, o2}, nil, twoDayRange(), time.Now())
	rev := ComputeSummary([]models.Order{o2, o1}, nil, twoDayRange(), time.Now())

	want := map[string]int{"latte": 3, "bagel": 3}
	for _, s := range []Summary{fwd, rev} {
		got := map[string]int{}
		for _, it := range s.TopItems {
			got[it.Name] = it.Quantity
		}
		require.Equal(t, want, got)
	}
}

func TestComputeSummary_KeepsZeroQuantityAndUnnamedItems(t *testing.T) {
	orders := []models.Order{
		{CreatedAt: at(day1, 9), Items: []models.OrderItem{
			{Name: "", Quantity: 1},
			{Name: "water", Quantity: 0},
		}},
	}

	s := ComputeSummary(orders, nil, twoDayRange(), time.Now())

	require.Equal(t, []ItemCount{
		{Name: "", Quantity: 1},
		{Name: "water", Quantity: 0},
	}, s.TopItems)
}

func TestComputeSummary_SalesByDateSortedAscending(t *testing.T) {
	rng := Range{Start: day1, End: day1.AddDate(0, 0, 4)}.Normalize()
	orders := []models.Order{
		{Total: 3, CreatedAt: at(day1.AddDate(0, 0, 4), 9)},
		{Total: 1, CreatedAt: at(day1, 9)},
		{Total: 2, CreatedAt: at(day1.AddDate(0, 0, 2), 9)},
	}

	s := ComputeSummary(orders, nil, rng, time.Now())

	require.Len(t, s.SalesByDate, 3)
	for i := 1; i < len(s.SalesByDate); i++ {
		require.True(t, s.SalesByDate[i-1].Date.Before(s.SalesByDate[i].Date))
	}
}

func TestLowStockItems_ThresholdBoundary(t *testing.T) {
	items := []models.InventoryItem{
		{Name: "flour", Quantity: 5, Threshold: 10},
		{Name: "sugar", Quantity: 10, Threshold: 10},
		{Name: "salt", Quantity: 11, Threshold: 10},
	}

	low := LowStockItems(items)

	require.Len(t, low, 2)
	require.Equal(t, "flour", low[0].Name)
	require.Equal(t, "sugar", low[1].Name)
}

func TestExpiringSoonItems_WindowBoundaries(t *testing.T) {
	now := time.Now()
	in7 := now.AddDate(0, 0, 7)
	in8 := now.AddDate(0, 0, 8)
	yesterday := now.AddDate(0, 0, -1)

	items := []models.InventoryItem{
		{Name: "milk", ExpiresAt: &in7},
		{Name: "cream", ExpiresAt: &in8},
		{Name: "yogurt", ExpiresAt: &yesterday},
		{Name: "cheese", Restocks: []models.RestockEvent{
			{Quantity: 5, ExpiresAt: in8},
			{Quantity: 3, ExpiresAt: now},
		}},
	}

	expiring := ExpiringSoonItems(items, now)

	require.Len(t, expiring, 2)
	require.Equal(t, "milk", expiring[0].Name)
	require.Equal(t, "cheese", expiring[1].Name)
}

func TestComputeSummary_ExpiringWindowIndependentOfRange(t *testing.T) {
	now := time.Now()
	soon := now.AddDate(0, 0, 2)
	items := []models.InventoryItem{
		{Name: "milk", Quantity: 50, Threshold: 5, ExpiresAt: &soon},
	}

	// A historical query window far from now must not affect the alert.
	s := ComputeSummary(nil, items, twoDayRange(), now)

	require.Len(t, s.ExpiringSoon, 1)
	require.Equal(t, "milk", s.ExpiringSoon[0].Name)
}

func TestComputeSummary_DoesNotMutateInputs(t *testing.T) {
	orders := []models.Order{
		{ID: "o2", Total: 5, CreatedAt: at(day2, 10), Items: []models.OrderItem{{Name: "latte", Quantity: 1}}},
		{ID: "o1", Total: 10, CreatedAt: at(day1, 9), Items: []models.OrderItem{{Name: "latte", Quantity: 2}}},
	}
	items := []models.InventoryItem{{Name: "flour", Quantity: 1, Threshold: 2}}

	wantOrders := append([]models.Order{}, orders...)
	wantItems := append([]models.InventoryItem{}, items...)

	_ = ComputeSummary(orders, items, twoDayRange(), time.Now())

	require.Equal(t, wantOrders, orders)
	require.Equal(t, wantItems, items)
}
