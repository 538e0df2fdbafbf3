package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/stockpilot/stockpilot/internal/domain/models"
)

// promptProduct collects product fields interactively. Defaults come from
// the passed-in record so updates only retype what changed.
func (d *Dispatcher) promptProduct(defaults models.Product) (models.Product, error) {
	var err error

	product := defaults
	product.ProductID = d.promptString("Product code", defaults.ProductID)
	product.Name = d.promptString("Name", defaults.Name)
	product.Category = d.promptString("Category", defaults.Category)
	product.Unit = d.promptString("Unit", defaults.Unit)

	if product.Price, err = d.promptFloat("Price", defaults.Price); err != nil {
		return models.Product{}, err
	}
	if product.MinStockLevel, err = d.promptInt("Minimum stock level", defaults.MinStockLevel); err != nil {
		return models.Product{}, err
	}
	if product.CurrentStock, err = d.promptInt("Current stock", defaults.CurrentStock); err != nil {
		return models.Product{}, err
	}

	if product.Name == "" {
		return models.Product{}, fmt.Errorf("%w: name is required", ErrInvalidArguments)
	}
	return product, nil
}

// promptSupplier collects supplier fields interactively.
func (d *Dispatcher) promptSupplier(defaults models.Supplier) (models.Supplier, error) {
	supplier := defaults
	supplier.SupplierID = d.promptString("Supplier code", defaults.SupplierID)
	supplier.Name = d.promptString("Name", defaults.Name)
	supplier.Phone = d.promptString("Phone", defaults.Phone)
	supplier.Email = d.promptString("Email", defaults.Email)
	supplier.Address = d.promptString("Address", defaults.Address)

	if supplier.Name == "" {
		return models.Supplier{}, fmt.Errorf("%w: name is required", ErrInvalidArguments)
	}
	return supplier, nil
}

func (d *Dispatcher) promptString(label, fallback string) string {
	if fallback != "" {
		fmt.Fprintf(d.out, "%s [%s]: ", label, fallback)
	} else {
		fmt.Fprintf(d.out, "%s: ", label)
	}

	line, err := d.in.ReadString('\n')
	if err != nil {
		return fallback
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}

func (d *Dispatcher) promptInt(label string, fallback int) (int, error) {
	raw := d.promptString(label, strconv.Itoa(fallback))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidArguments, label)
	}
	return value, nil
}

func (d *Dispatcher) promptFloat(label string, fallback float64) (float64, error) {
	raw := d.promptString(label, strconv.FormatFloat(fallback, 'f', -1, 64))
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidArguments, label)
	}
	return value, nil
}

func createFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create export file: %w", err)
	}
	return f, nil
}
