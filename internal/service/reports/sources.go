package reports

import (
	"context"

	"github.com/stockpilot/stockpilot/internal/domain/models"
	"github.com/stockpilot/stockpilot/pkg/clients/inventory"
)

// Sources enumerates the report endpoints the reconciler draws from.
// LowStockProducts is the secondary fallback used only when the low-stock
// summary endpoint fails.
type Sources interface {
	CategoryDistribution(ctx context.Context) (map[string]int, error)
	LowStockSummary(ctx context.Context) ([]models.LowStockItem, error)
	ValueByCategory(ctx context.Context) (map[string]float64, error)
	StockReport(ctx context.Context) (*models.StockMovement, error)
	SupplierCount(ctx context.Context) (*models.SupplierCount, error)
	Products(ctx context.Context) ([]models.Product, error)
	LowStockProducts(ctx context.Context) ([]models.Product, error)
}

// clientSources adapts the inventory API client to the Sources interface.
type clientSources struct {
	client *inventory.Client
}

// NewClientSources exposes an inventory client as report sources.
func NewClientSources(client *inventory.Client) Sources {
	return &clientSources{client: client}
}

func (s *clientSources) CategoryDistribution(ctx context.Context) (map[string]int, error) {
	return s.client.Products.CategoryDistribution(ctx)
}

func (s *clientSources) LowStockSummary(ctx context.Context) ([]models.LowStockItem, error) {
	return s.client.Products.LowStockSummary(ctx)
}

func (s *clientSources) ValueByCategory(ctx context.Context) (map[string]float64, error) {
	return s.client.Products.ValueByCategory(ctx)
}

func (s *clientSources) StockReport(ctx context.Context) (*models.StockMovement, error) {
	return s.client.Stock.Report(ctx)
}

func (s *clientSources) SupplierCount(ctx context.Context) (*models.SupplierCount, error) {
	return s.client.Suppliers.Count(ctx)
}

func (s *clientSources) Products(ctx context.Context) ([]models.Product, error) {
	return s.client.Products.List(ctx)
}

func (s *clientSources) LowStockProducts(ctx context.Context) ([]models.Product, error) {
	return s.client.Products.LowStock(ctx)
}
