package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockpilot/stockpilot/internal/domain/models"
)

// StockAPI exposes the stock movement endpoints. Movements are append-only:
// the client reads history and posts new transactions, nothing else.
type StockAPI struct {
	c *Client
}

// In records an inbound stock movement. A fresh idempotency key guards the
// server against a double-submitted form.
func (s *StockAPI) In(ctx context.Context, req models.StockRequest) (*models.StockTransaction, error) {
	out := new(models.StockTransaction)
	resp, err := s.c.request(ctx).
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetBody(req).
		SetResult(out).
		Post("/stock/in")
	if err := checkResponse(resp, err, "stock in"); err != nil {
		return nil, err
	}
	return out, nil
}

// Out records an outbound stock movement.
func (s *StockAPI) Out(ctx context.Context, req models.StockRequest) (*models.StockTransaction, error) {
	out := new(models.StockTransaction)
	resp, err := s.c.request(ctx).
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetBody(req).
		SetResult(out).
		Post("/stock/out")
	if err := checkResponse(resp, err, "stock out"); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *StockAPI) Transactions(ctx context.Context) ([]models.StockTransaction, error) {
	out := new([]models.StockTransaction)
	resp, err := s.c.request(ctx).SetResult(out).Get("/stock/transactions")
	if err := checkResponse(resp, err, "list transactions"); err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *StockAPI) ProductTransactions(ctx context.Context, productID int) ([]models.StockTransaction, error) {
	out := new([]models.StockTransaction)
	resp, err := s.c.request(ctx).SetResult(out).Get(fmt.Sprintf("/stock/transactions/product/%d", productID))
	if err := checkResponse(resp, err, "list product transactions"); err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *StockAPI) Report(ctx context.Context) (*models.StockMovement, error) {
	out := new(models.StockMovement)
	resp, err := s.c.request(ctx).SetResult(out).Get("/stock/report")
	if err := checkResponse(resp, err, "get stock report"); err != nil {
		return nil, err
	}
	return out, nil
}
