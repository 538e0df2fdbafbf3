package reports

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot/stockpilot/internal/domain/models"
)

func TestWriteCSV(t *testing.T) {
	view := &models.ReportView{
		CategoryDistribution: []models.CategoryValue{{Name: "Fasteners", Value: 4}},
		ValueByCategory:      []models.CategoryValue{{Name: "Fasteners", Value: 120.5}},
		LowStockSummary: []models.LowStockItem{
			{ProductID: "PRD-004", Name: "Washer", Category: "Fasteners", CurrentStock: 2, MinStockLevel: 5, Difference: 3},
		},
		StockMovement: models.StockMovement{TotalTransactions: 9, TotalStockIn: 6, TotalStockOut: 3},
		TotalProducts: 4,
		SupplierCount: 2,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, view))

	out := buf.String()
	assert.Contains(t, out, "Total Products,4")
	assert.Contains(t, out, "Fasteners,4")
	assert.Contains(t, out, "Fasteners,120.50")
	assert.Contains(t, out, "PRD-004,Washer,Fasteners,2,5,3")
	assert.True(t, strings.HasPrefix(out, "Metric,Value"))
}

func TestWriteCSV_NilView(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, WriteCSV(&buf, nil))
}
