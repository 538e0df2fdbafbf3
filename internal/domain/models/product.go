package models

// Product is a catalog entry as served by the inventory API. Copies are
// transient: every mutation is followed by a refetch, never a local edit.
type Product struct {
	ID            int     `json:"id"`
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Unit          string  `json:"unit"`
	Price         float64 `json:"price"`
	MinStockLevel int     `json:"minStockLevel"`
	CurrentStock  int     `json:"currentStock"`
}

// DashboardStats is the aggregate snapshot backing the dashboard screen.
type DashboardStats struct {
	TotalProducts int     `json:"totalProducts"`
	LowStockCount int     `json:"lowStockCount"`
	TotalValue    float64 `json:"totalValue"`
}
