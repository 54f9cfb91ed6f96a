package handlers

type ItemCountResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type DailySalesResponse struct {
	Date    string  `json:"date"`
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}

type SummaryResponse struct {
	Start             string               `json:"start"`
	End               string               `json:"end"`
	TotalSales        float64              `json:"total_sales"`
	TotalOrders       int                  `json:"total_orders"`
	CustomerAppOrders int                  `json:"customer_app_orders"`
	PosAppOrders      int                  `json:"pos_app_orders"`
	TopItems          []ItemCountResponse  `json:"top_items"`
	SalesByDate       []DailySalesResponse `json:"sales_by_date"`
	LowStockCount     int                  `json:"low_stock_count"`
	ExpiringSoonCount int                  `json:"expiring_soon_count"`
	AlertBadgeCount   int                  `json:"alert_badge_count"`
}

type InventoryItemResponse struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Threshold  int    `json:"threshold"`
	Category   string `json:"category,omitempty"`
	LowStock   bool   `json:"low_stock,omitempty"`
	NextExpiry string `json:"next_expiry,omitempty"`
}

type InventoryAlertsResponse struct {
	LowStock        []InventoryItemResponse `json:"low_stock"`
	ExpiringSoon    []InventoryItemResponse `json:"expiring_soon"`
	AlertBadgeCount int                     `json:"alert_badge_count"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordResetResult struct {
	Message string `json:"message"`
}

type ConfirmResetRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
