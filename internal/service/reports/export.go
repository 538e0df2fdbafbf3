package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/stockpilot/stockpilot/internal/domain/models"
)

// WriteCSV renders a reconciled view as CSV: a summary block followed by the
// category distribution, inventory value and low-stock tables.
func WriteCSV(w io.Writer, view *models.ReportView) error {
	if view == nil {
		return fmt.Errorf("nil report view")
	}

	out := csv.NewWriter(w)

	rows := [][]string{
		{"Metric", "Value"},
		{"Total Products", strconv.Itoa(view.TotalProducts)},
		{"Suppliers", strconv.Itoa(view.SupplierCount)},
		{"Total Transactions", strconv.Itoa(view.StockMovement.TotalTransactions)},
		{"Stock In", strconv.Itoa(view.StockMovement.TotalStockIn)},
		{"Stock Out", strconv.Itoa(view.StockMovement.TotalStockOut)},
		{},
		{"Category", "Products"},
	}
	for _, entry := range view.CategoryDistribution {
		rows = append(rows, []string{entry.Name, strconv.Itoa(int(entry.Value))})
	}

	rows = append(rows, []string{}, []string{"Category", "Inventory Value"})
	for _, entry := range view.ValueByCategory {
		rows = append(rows, []string{entry.Name, strconv.FormatFloat(entry.Value, 'f', 2, 64)})
	}

	rows = append(rows, []string{}, []string{"Product ID", "Name", "Category", "Current Stock", "Min Stock", "Shortfall"})
	for _, item := range view.LowStockSummary {
		rows = append(rows, []string{
			item.ProductID,
			item.Name,
			item.Category,
			strconv.Itoa(item.CurrentStock),
			strconv.Itoa(item.MinStockLevel),
			strconv.Itoa(item.Difference),
		})
	}

	for _, row := range rows {
		if len(row) == 0 {
			row = []string{""}
		}
		if err := out.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	out.Flush()
	return out.Error()
}
