package models

// CategoryValue is one name/value pair in a per-category series.
type CategoryValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// LowStockItem is one row of the low-stock summary. Difference is the
// shortfall below the configured minimum (minStockLevel - currentStock).
type LowStockItem struct {
	ID            int    `json:"id"`
	ProductID     string `json:"productId"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	CurrentStock  int    `json:"currentStock"`
	MinStockLevel int    `json:"minStockLevel"`
	Difference    int    `json:"difference"`
}

// ReportView is a fully reconciled analytics snapshot. It is rebuilt from
// scratch on every report fetch and never merged with a prior view.
type ReportView struct {
	CategoryDistribution []CategoryValue `json:"categoryDistribution"`
	LowStockSummary      []LowStockItem  `json:"lowStockSummary"`
	ValueByCategory      []CategoryValue `json:"valueByCategory"`
	StockMovement        StockMovement   `json:"stockMovement"`
	TotalProducts        int             `json:"totalProducts"`
	SupplierCount        int             `json:"supplierCount"`
}
