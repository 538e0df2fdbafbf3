package reports

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot/stockpilot/internal/domain/models"
)

var errDown = errors.New("endpoint unavailable")

// fakeSources settles each fetch from canned outcomes.
type fakeSources struct {
	categories    map[string]int
	categoriesErr error

	lowStock    []models.LowStockItem
	lowStockErr error

	values    map[string]float64
	valuesErr error

	movement    *models.StockMovement
	movementErr error

	suppliers    *models.SupplierCount
	suppliersErr error

	products    []models.Product
	productsErr error

	lowStockProducts    []models.Product
	lowStockProductsErr error
}

func (f *fakeSources) CategoryDistribution(context.Context) (map[string]int, error) {
	return f.categories, f.categoriesErr
}

func (f *fakeSources) LowStockSummary(context.Context) ([]models.LowStockItem, error) {
	return f.lowStock, f.lowStockErr
}

func (f *fakeSources) ValueByCategory(context.Context) (map[string]float64, error) {
	return f.values, f.valuesErr
}

func (f *fakeSources) StockReport(context.Context) (*models.StockMovement, error) {
	return f.movement, f.movementErr
}

func (f *fakeSources) SupplierCount(context.Context) (*models.SupplierCount, error) {
	return f.suppliers, f.suppliersErr
}

func (f *fakeSources) Products(context.Context) ([]models.Product, error) {
	return f.products, f.productsErr
}

func (f *fakeSources) LowStockProducts(context.Context) ([]models.Product, error) {
	return f.lowStockProducts, f.lowStockProductsErr
}

func allDown() *fakeSources {
	return &fakeSources{
		categoriesErr:       errDown,
		lowStockErr:         errDown,
		valuesErr:           errDown,
		movementErr:         errDown,
		suppliersErr:        errDown,
		productsErr:         errDown,
		lowStockProductsErr: errDown,
	}
}

func TestFetch_AllPrimariesSucceed(t *testing.T) {
	src := &fakeSources{
		categories: map[string]int{"Raw Material": 3, "Finished": 2},
		lowStock: []models.LowStockItem{
			{ID: 1, Name: "Bolt M6", CurrentStock: 2, MinStockLevel: 5, Difference: 3},
		},
		values:    map[string]float64{"Raw Material": 120.456, "Finished": 80},
		movement:  &models.StockMovement{TotalTransactions: 12, TotalStockIn: 8, TotalStockOut: 4},
		suppliers: &models.SupplierCount{TotalSuppliers: 7},
		products:  []models.Product{{ID: 1}, {ID: 2}, {ID: 3}},
	}

	view, err := NewService(src, nil).Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.CategoryValue{
		{Name: "Finished", Value: 2},
		{Name: "Raw Material", Value: 3},
	}, view.CategoryDistribution)
	assert.Equal(t, []models.CategoryValue{
		{Name: "Finished", Value: 80},
		{Name: "Raw Material", Value: 120.46},
	}, view.ValueByCategory)
	assert.Len(t, view.LowStockSummary, 1)
	assert.Equal(t, 12, view.StockMovement.TotalTransactions)
	assert.Equal(t, 7, view.SupplierCount)
	assert.Equal(t, 3, view.TotalProducts)
}

func TestFetch_CategoryDistributionFallsBackToProducts(t *testing.T) {
	src := allDown()
	src.productsErr = nil
	src.products = []models.Product{
		{Category: "A"},
		{Category: "A"},
		{Category: "B"},
	}

	view, err := NewService(src, nil).Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.CategoryValue{
		{Name: "A", Value: 2},
		{Name: "B", Value: 1},
	}, view.CategoryDistribution)
}

func TestFetch_FallbackDefaultsMissingCategory(t *testing.T) {
	src := allDown()
	src.productsErr = nil
	src.products = []models.Product{{Name: "loose part"}}

	view, err := NewService(src, nil).Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.CategoryValue{
		{Name: "Uncategorized", Value: 1},
	}, view.CategoryDistribution)
}

func TestFetch_ValueByCategoryFallback(t *testing.T) {
	src := allDown()
	src.productsErr = nil
	src.products = []models.Product{
		{Category: "A", Price: 10, CurrentStock: 3},
		{Category: "A", Price: 5, CurrentStock: 2},
	}

	view, err := NewService(src, nil).Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, view.ValueByCategory, 1)
	assert.Equal(t, "A", view.ValueByCategory[0].Name)
	assert.Equal(t, 40.00, view.ValueByCategory[0].Value)
}

func TestFetch_LowStockSecondaryFallbackComputesShortfall(t *testing.T) {
	src := allDown()
	src.lowStockProductsErr = nil
	src.lowStockProducts = []models.Product{
		{ID: 4, ProductID: "PRD-004", Name: "Washer", Category: "Fasteners", CurrentStock: 2, MinStockLevel: 5},
	}

	view, err := NewService(src, nil).Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, view.LowStockSummary, 1)
	item := view.LowStockSummary[0]
	assert.Equal(t, "PRD-004", item.ProductID)
	assert.Equal(t, 3, item.Difference)
}

func TestFetch_TotalFailureYieldsEmptyView(t *testing.T) {
	view, err := NewService(allDown(), nil).Fetch(context.Background())
	require.NoError(t, err)

	assert.Empty(t, view.CategoryDistribution)
	assert.Empty(t, view.LowStockSummary)
	assert.Empty(t, view.ValueByCategory)
	assert.Zero(t, view.StockMovement)
	assert.Zero(t, view.TotalProducts)
	assert.Zero(t, view.SupplierCount)
}

func TestFetch_Idempotent(t *testing.T) {
	src := &fakeSources{
		categories:  map[string]int{"A": 2, "B": 1, "C": 9},
		lowStockErr: errDown,
		lowStockProducts: []models.Product{
			{ID: 1, ProductID: "PRD-001", Name: "Nut", CurrentStock: 1, MinStockLevel: 4},
		},
		values:    map[string]float64{"A": 33.333, "B": 2},
		movement:  &models.StockMovement{TotalTransactions: 5},
		suppliers: &models.SupplierCount{TotalSuppliers: 2},
		products:  []models.Product{{ID: 1}, {ID: 2}},
	}

	svc := NewService(src, nil)

	first, err := svc.Fetch(context.Background())
	require.NoError(t, err)
	second, err := svc.Fetch(context.Background())
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestFetch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(allDown(), nil).Fetch(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
