package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/rogerio-castellano/resto-dashboard/internal/dashboard"
	"github.com/rogerio-castellano/resto-dashboard/internal/models"
)

// GetDashboardHandler godoc
// @Summary Sales and inventory dashboard for a date window
// @Description Aggregates orders and inventory into summary cards, a revenue-by-date series and alert counts
// @Tags dashboard
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Param mode query string false "Range entry mode: text (default) or picker"
// @Param changed query string false "Bound the picker moved last: start or end"
// @Success 200 {object} SummaryResponse
// @Failure 400 {string} string "Invalid range"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	rng, errMsg := parseRangeQuery(r.URL.Query())
	if errMsg != "" {
		http.Error(w, errMsg, http.StatusBadRequest)
		return
	}

	summary, err := dashboardLoader.Load(r.Context(), rng)
	if err != nil {
		log.Printf("dashboard load failed: %v", err)
		http.Error(w, "could not load dashboard", http.StatusInternalServerError)
		return
	}

	resp := SummaryResponse{
		Start:             rng.Start.Format("2006-01-02"),
		End:               rng.End.Format("2006-01-02"),
		TotalSales:        summary.TotalSales,
		TotalOrders:       summary.TotalOrders,
		CustomerAppOrders: summary.CustomerAppOrders,
		PosAppOrders:      summary.POSOrders,
		TopItems:          make([]ItemCountResponse, len(summary.TopItems)),
		SalesByDate:       make([]DailySalesResponse, len(summary.SalesByDate)),
		LowStockCount:     len(summary.LowStock),
		ExpiringSoonCount: len(summary.ExpiringSoon),
		AlertBadgeCount:   len(summary.LowStock) + len(summary.ExpiringSoon),
	}
	for i, it := range summary.TopItems {
		resp.TopItems[i] = ItemCountResponse{Name: it.Name, Quantity: it.Quantity}
	}
	for i, d := range summary.SalesByDate {
		resp.SalesByDate[i] = DailySalesResponse{
			Date:    d.Date.Format("2006-01-02"),
			Label:   d.Label,
			Revenue: d.Revenue,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetInventoryAlertsHandler godoc
// @Summary Low-stock and expiring inventory detail
// @Description Backs the alerts modal: all low-stock and expiring-soon items with per-item detail
// @Tags dashboard
// @Produce json
// @Success 200 {object} InventoryAlertsResponse
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/alerts [get]
func GetInventoryAlertsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := inventoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("inventory fetch failed: %v", err)
		http.Error(w, "could not fetch inventory", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	low := dashboard.LowStockItems(items)
	expiring := dashboard.ExpiringSoonItems(items, now)

	resp := InventoryAlertsResponse{
		LowStock:        make([]InventoryItemResponse, len(low)),
		ExpiringSoon:    make([]InventoryItemResponse, len(expiring)),
		AlertBadgeCount: len(low) + len(expiring),
	}
	for i, it := range low {
		resp.LowStock[i] = toInventoryItemResponse(it, now)
	}
	for i, it := range expiring {
		resp.ExpiringSoon[i] = toInventoryItemResponse(it, now)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

func toInventoryItemResponse(it models.InventoryItem, now time.Time) InventoryItemResponse {
	resp := InventoryItemResponse{
		Id:        it.ID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		Threshold: it.Threshold,
		Category:  it.Category,
		LowStock:  it.Quantity <= it.Threshold,
	}
	if exp, ok := dashboard.EarliestExpiry(it, now); ok {
		resp.NextExpiry = exp.Format("2006-01-02")
	}
	return resp
}
