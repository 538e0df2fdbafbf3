package reports

import (
	"math"
	"sort"

	"github.com/stockpilot/stockpilot/internal/domain/models"
)

const uncategorized = "Uncategorized"

// reconcile turns settled fetches into one view. Pure: no I/O, no logging,
// deterministic output for identical snapshots.
func reconcile(snap *snapshot) models.ReportView {
	view := models.ReportView{
		CategoryDistribution: []models.CategoryValue{},
		LowStockSummary:      []models.LowStockItem{},
		ValueByCategory:      []models.CategoryValue{},
	}

	switch {
	case snap.categories.err == nil:
		view.CategoryDistribution = toCategorySeries(intsToFloats(snap.categories.value), false)
	case snap.products.err == nil:
		counts := make(map[string]float64)
		for _, p := range snap.products.value {
			counts[categoryOf(p)]++
		}
		view.CategoryDistribution = toCategorySeries(counts, false)
	}

	if snap.lowStock.err == nil && snap.lowStock.value != nil {
		view.LowStockSummary = snap.lowStock.value
	}

	switch {
	case snap.values.err == nil:
		view.ValueByCategory = toCategorySeries(snap.values.value, true)
	case snap.products.err == nil:
		sums := make(map[string]float64)
		for _, p := range snap.products.value {
			sums[categoryOf(p)] += p.Price * float64(p.CurrentStock)
		}
		view.ValueByCategory = toCategorySeries(sums, true)
	}

	if snap.movement.err == nil && snap.movement.value != nil {
		view.StockMovement = *snap.movement.value
	}

	if snap.suppliers.err == nil && snap.suppliers.value != nil {
		view.SupplierCount = snap.suppliers.value.TotalSuppliers
	}

	if snap.products.err == nil {
		view.TotalProducts = len(snap.products.value)
	}

	return view
}

// lowStockFromProducts maps low-stock products to summary rows, computing
// the shortfall below the configured minimum.
func lowStockFromProducts(products []models.Product) []models.LowStockItem {
	items := make([]models.LowStockItem, 0, len(products))
	for _, p := range products {
		items = append(items, models.LowStockItem{
			ID:            p.ID,
			ProductID:     p.ProductID,
			Name:          p.Name,
			Category:      p.Category,
			CurrentStock:  p.CurrentStock,
			MinStockLevel: p.MinStockLevel,
			Difference:    p.MinStockLevel - p.CurrentStock,
		})
	}
	return items
}

// toCategorySeries converts a category map into a name-sorted series so the
// same input always yields the same output, map iteration order aside.
func toCategorySeries(values map[string]float64, round bool) []models.CategoryValue {
	series := make([]models.CategoryValue, 0, len(values))
	for name, value := range values {
		if round {
			value = round2(value)
		}
		series = append(series, models.CategoryValue{Name: name, Value: value})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Name < series[j].Name })
	return series
}

func intsToFloats(counts map[string]int) map[string]float64 {
	out := make(map[string]float64, len(counts))
	for name, count := range counts {
		out[name] = float64(count)
	}
	return out
}

func categoryOf(p models.Product) string {
	if p.Category == "" {
		return uncategorized
	}
	return p.Category
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
