package inventory

import (
	"context"
	"fmt"

	"github.com/stockpilot/stockpilot/internal/domain/models"
)

// ProductAPI exposes product CRUD, the low-stock query, dashboard stats and
// the three report queries. Every call is a direct pass-through: no retries,
// no validation, errors propagate to the caller.
type ProductAPI struct {
	c *Client
}

func (p *ProductAPI) List(ctx context.Context) ([]models.Product, error) {
	out := new([]models.Product)
	resp, err := p.c.request(ctx).SetResult(out).Get("/products")
	if err := checkResponse(resp, err, "list products"); err != nil {
		return nil, err
	}
	return *out, nil
}

func (p *ProductAPI) Get(ctx context.Context, id int) (*models.Product, error) {
	out := new(models.Product)
	resp, err := p.c.request(ctx).SetResult(out).Get(fmt.Sprintf("/products/%d", id))
	if err := checkResponse(resp, err, "get product"); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ProductAPI) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	out := new(models.Product)
	resp, err := p.c.request(ctx).SetBody(product).SetResult(out).Post("/products")
	if err := checkResponse(resp, err, "create product"); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ProductAPI) Update(ctx context.Context, id int, product models.Product) (*models.Product, error) {
	out := new(models.Product)
	resp, err := p.c.request(ctx).SetBody(product).SetResult(out).Put(fmt.Sprintf("/products/%d", id))
	if err := checkResponse(resp, err, "update product"); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ProductAPI) Delete(ctx context.Context, id int) error {
	resp, err := p.c.request(ctx).Delete(fmt.Sprintf("/products/%d", id))
	return checkResponse(resp, err, "delete product")
}

// LowStock returns products at or below their minimum stock level.
func (p *ProductAPI) LowStock(ctx context.Context) ([]models.Product, error) {
	out := new([]models.Product)
	resp, err := p.c.request(ctx).SetResult(out).Get("/products/low-stock")
	if err := checkResponse(resp, err, "list low-stock products"); err != nil {
		return nil, err
	}
	return *out, nil
}

func (p *ProductAPI) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	out := new(models.DashboardStats)
	resp, err := p.c.request(ctx).SetResult(out).Get("/products/dashboard/stats")
	if err := checkResponse(resp, err, "get dashboard stats"); err != nil {
		return nil, err
	}
	return out, nil
}

// CategoryDistribution returns the category -> product count mapping.
func (p *ProductAPI) CategoryDistribution(ctx context.Context) (map[string]int, error) {
	out := new(map[string]int)
	resp, err := p.c.request(ctx).SetResult(out).Get("/products/report/category-distribution")
	if err := checkResponse(resp, err, "get category distribution"); err != nil {
		return nil, err
	}
	return *out, nil
}

func (p *ProductAPI) LowStockSummary(ctx context.Context) ([]models.LowStockItem, error) {
	out := new([]models.LowStockItem)
	resp, err := p.c.request(ctx).SetResult(out).Get("/products/report/low-stock-summary")
	if err := checkResponse(resp, err, "get low-stock summary"); err != nil {
		return nil, err
	}
	return *out, nil
}

// ValueByCategory returns the category -> inventory value mapping.
func (p *ProductAPI) ValueByCategory(ctx context.Context) (map[string]float64, error) {
	out := new(map[string]float64)
	resp, err := p.c.request(ctx).SetResult(out).Get("/products/report/value-by-category")
	if err := checkResponse(resp, err, "get value by category"); err != nil {
		return nil, err
	}
	return *out, nil
}
