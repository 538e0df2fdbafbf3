package inventory

import (
	"context"
	"fmt"

	"github.com/stockpilot/stockpilot/internal/domain/models"
)

// SupplierAPI exposes supplier CRUD and the supplier count endpoint.
type SupplierAPI struct {
	c *Client
}

func (s *SupplierAPI) List(ctx context.Context) ([]models.Supplier, error) {
	out := new([]models.Supplier)
	resp, err := s.c.request(ctx).SetResult(out).Get("/suppliers")
	if err := checkResponse(resp, err, "list suppliers"); err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *SupplierAPI) Get(ctx context.Context, id int) (*models.Supplier, error) {
	out := new(models.Supplier)
	resp, err := s.c.request(ctx).SetResult(out).Get(fmt.Sprintf("/suppliers/%d", id))
	if err := checkResponse(resp, err, "get supplier"); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SupplierAPI) Create(ctx context.Context, supplier models.Supplier) (*models.Supplier, error) {
	out := new(models.Supplier)
	resp, err := s.c.request(ctx).SetBody(supplier).SetResult(out).Post("/suppliers")
	if err := checkResponse(resp, err, "create supplier"); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SupplierAPI) Update(ctx context.Context, id int, supplier models.Supplier) (*models.Supplier, error) {
	out := new(models.Supplier)
	resp, err := s.c.request(ctx).SetBody(supplier).SetResult(out).Put(fmt.Sprintf("/suppliers/%d", id))
	if err := checkResponse(resp, err, "update supplier"); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SupplierAPI) Delete(ctx context.Context, id int) error {
	resp, err := s.c.request(ctx).Delete(fmt.Sprintf("/suppliers/%d", id))
	return checkResponse(resp, err, "delete supplier")
}

func (s *SupplierAPI) Count(ctx context.Context) (*models.SupplierCount, error) {
	out := new(models.SupplierCount)
	resp, err := s.c.request(ctx).SetResult(out).Get("/suppliers/count")
	if err := checkResponse(resp, err, "get supplier count"); err != nil {
		return nil, err
	}
	return out, nil
}
