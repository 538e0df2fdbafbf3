package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/stockpilot/stockpilot/internal/domain/models"
)

// LowStockLister fetches the products currently below minimum stock.
type LowStockLister interface {
	LowStock(ctx context.Context) ([]models.Product, error)
}

// Scheduler runs the periodic low-stock watch in the background while the
// interactive session is open.
type Scheduler struct {
	cron     *cron.Cron
	products LowStockLister
	schedule string
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance. An empty schedule disables
// the watch.
func NewScheduler(schedule string, products LowStockLister, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:     cron.New(),
		products: products,
		schedule: schedule,
		logger:   logger,
	}
}

// Start schedules the watch and starts the cron loop.
func (s *Scheduler) Start() {
	if s.schedule == "" {
		s.logger.Info("low-stock watch disabled")
		return
	}

	if _, err := s.cron.AddFunc(s.schedule, s.checkLowStock); err != nil {
		s.logger.Error("failed to schedule low-stock watch", zap.Error(err))
		return
	}

	s.logger.Info("low-stock watch scheduled", zap.String("schedule", s.schedule))
	s.cron.Start()
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) checkLowStock() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := s.products.LowStock(ctx)
	if err != nil {
		s.logger.Warn("low-stock check failed", zap.Error(err))
		return
	}

	if len(products) == 0 {
		s.logger.Debug("low-stock check clean")
		return
	}

	for _, p := range products {
		s.logger.Warn("product below minimum stock",
			zap.String("product", p.Name),
			zap.String("code", p.ProductID),
			zap.Int("currentStock", p.CurrentStock),
			zap.Int("minStockLevel", p.MinStockLevel),
		)
	}
}
