package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.00", formatMoney(decimal.Zero))
	assert.Equal(t, "999.90", formatMoney(decimal.RequireFromString("999.9")))
	assert.Equal(t, "25,000.00", formatMoney(decimal.NewFromInt(25000)))
	assert.Equal(t, "1,234,567.50", formatMoney(decimal.RequireFromString("1234567.5")))
}

func TestMarotoPDFGenerator_InventoryReport(t *testing.T) {
	products := []*entity.Product{
		{SKU: "W-1", Name: "Widget", Category: "Tools", Price: decimal.RequireFromString("9.99"), Quantity: 10, ReorderLevel: 3},
		{SKU: "G-1", Name: "Gadget", Category: "Tools", Price: decimal.RequireFromString("2.50"), Quantity: 1, ReorderLevel: 5},
	}
	g := NewMarotoPDFGenerator("stockwise-api")

	out, err := g.InventoryReport(context.Background(), ports.InventoryReport{
		GeneratedAt:   time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC),
		Products:      products,
		LowStockCount: 1,
		TotalValue:    decimal.RequireFromString("102.40"),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe ser un PDF")
}

func TestMarotoPDFGenerator_SinProductos(t *testing.T) {
	out, err := NewMarotoPDFGenerator("stockwise-api").InventoryReport(context.Background(), ports.InventoryReport{
		GeneratedAt: time.Now(),
		TotalValue:  decimal.Zero,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
