package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockwise-api/internal/domain/entity"
)

func TestProduct_LowStock(t *testing.T) {
	cases := []struct {
		name     string
		qty      int
		reorder  int
		expected bool
	}{
		{"por debajo", 10, 15, true},
		{"igual al punto de reorden", 15, 15, true},
		{"por encima", 20, 15, false},
		{"sin existencias ni reorden", 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &entity.Product{Quantity: tc.qty, ReorderLevel: tc.reorder}
			assert.Equal(t, tc.expected, p.LowStock())
		})
	}
}

func TestProduct_BarcodeValue_UsaSKUSiNoHayBarcode(t *testing.T) {
	p := &entity.Product{SKU: "SKU-1"}
	assert.Equal(t, "SKU-1", p.BarcodeValue())

	p.Barcode = "7701234567890"
	assert.Equal(t, "7701234567890", p.BarcodeValue())
}

func TestProduct_InventoryValue(t *testing.T) {
	p := &entity.Product{Price: decimal.RequireFromString("12.50"), Quantity: 4}
	assert.True(t, p.InventoryValue().Equal(decimal.NewFromInt(50)))
}
