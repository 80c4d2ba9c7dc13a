package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// LowStock no se persiste: se deriva de Quantity y ReorderLevel en cada lectura.
type Product struct {
	ID           string
	SKU          string // único en todo el catálogo
	Name         string
	Category     string
	Supplier     string
	Price        decimal.Decimal
	Quantity     int // existencias; solo cambia vía movimientos o edición explícita
	ReorderLevel int
	Barcode      string // vacío si no se ha asignado
	Variants     []Variant
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Variant variante opcional de un producto (talla, color, etc.). Se guarda como JSONB.
type Variant struct {
	Name     string          `json:"name"`
	Value    string          `json:"value"`
	SKU      string          `json:"sku,omitempty"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// LowStock indica si el producto está en o por debajo del punto de reorden.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// BarcodeValue valor a codificar en Code128: el barcode asignado o, en su defecto, el SKU.
func (p *Product) BarcodeValue() string {
	if p.Barcode != "" {
		return p.Barcode
	}
	return p.SKU
}

// InventoryValue precio * cantidad.
func (p *Product) InventoryValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
