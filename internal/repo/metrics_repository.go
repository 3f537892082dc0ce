package repo

// Metrics is the dashboard summary derived from the three collections.
type Metrics struct {
	TotalProducts   int     `json:"total_products"`
	TotalCategories int     `json:"total_categories"`
	TotalCarts      int     `json:"total_carts"`
	OutOfStockCount int     `json:"out_of_stock_count"`
	OpenCartValue   float64 `json:"open_cart_value"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
