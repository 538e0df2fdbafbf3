package reports

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/stockpilot/stockpilot/internal/domain/models"
)

// Service assembles a coherent ReportView from independently failable
// sources. Per-source failures are absorbed into fallbacks or empty
// defaults and logged; only orchestration-level failure (a dead context)
// surfaces as an error.
type Service struct {
	src    Sources
	logger *zap.Logger
}

// NewService wires a new report service instance.
func NewService(src Sources, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{src: src, logger: logger}
}

// outcome is one settled fetch: a value or an error, never both meaningful.
type outcome[T any] struct {
	value T
	err   error
}

// snapshot holds the six settled primary fetches.
type snapshot struct {
	categories outcome[map[string]int]
	lowStock   outcome[[]models.LowStockItem]
	values     outcome[map[string]float64]
	movement   outcome[*models.StockMovement]
	suppliers  outcome[*models.SupplierCount]
	products   outcome[[]models.Product]
}

// Fetch issues all six report fetches concurrently, waits for every one to
// settle, then reconciles them into a single view. It never fails because an
// individual source failed.
func (s *Service) Fetch(ctx context.Context) (*models.ReportView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var snap snapshot
	var wg sync.WaitGroup

	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	run(func() { snap.categories.value, snap.categories.err = s.src.CategoryDistribution(ctx) })
	run(func() { snap.lowStock.value, snap.lowStock.err = s.src.LowStockSummary(ctx) })
	run(func() { snap.values.value, snap.values.err = s.src.ValueByCategory(ctx) })
	run(func() { snap.movement.value, snap.movement.err = s.src.StockReport(ctx) })
	run(func() { snap.suppliers.value, snap.suppliers.err = s.src.SupplierCount(ctx) })
	run(func() { snap.products.value, snap.products.err = s.src.Products(ctx) })

	wg.Wait()

	s.logFailures(&snap)

	// Secondary fallback: when the summary endpoint is down, derive the rows
	// from the plain low-stock product list.
	if snap.lowStock.err != nil {
		products, err := s.src.LowStockProducts(ctx)
		if err != nil {
			s.logger.Warn("low-stock fallback fetch failed", zap.Error(err))
		} else {
			snap.lowStock = outcome[[]models.LowStockItem]{value: lowStockFromProducts(products)}
		}
	}

	view := reconcile(&snap)
	return &view, nil
}

func (s *Service) logFailures(snap *snapshot) {
	for name, err := range map[string]error{
		"category-distribution": snap.categories.err,
		"low-stock-summary":     snap.lowStock.err,
		"value-by-category":     snap.values.err,
		"stock-report":          snap.movement.err,
		"supplier-count":        snap.suppliers.err,
		"product-list":          snap.products.err,
	} {
		if err != nil {
			s.logger.Warn("report source failed", zap.String("source", name), zap.Error(err))
		}
	}
}
