package ports

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockwise-api/internal/domain/entity"
)

// ProductRecord fila cruda del CSV de productos (sin convertir ni validar).
type ProductRecord struct {
	Name         string
	SKU          string
	Category     string
	Supplier     string
	Price        string
	Quantity     string
	ReorderLevel string
}

// ProductCSVCodec lee y escribe el CSV de productos
// (encabezado name,sku,category,supplier,price,quantity,reorderLevel).
type ProductCSVCodec interface {
	Decode(r io.Reader) ([]ProductRecord, error)
	Encode(w io.Writer, products []*entity.Product) error
}

// SpreadsheetRenderer genera libros .xlsx.
type SpreadsheetRenderer interface {
	ProductsWorkbook(products []*entity.Product) ([]byte, error)
	StockMovementsWorkbook(movements []*entity.StockMovementView) ([]byte, error)
}

// InventoryReport datos del reporte PDF de inventario.
type InventoryReport struct {
	GeneratedAt   time.Time
	Products      []*entity.Product
	LowStockCount int
	TotalValue    decimal.Decimal // suma de precio * cantidad
}

// PDFRenderer genera el reporte de inventario en PDF.
type PDFRenderer interface {
	InventoryReport(ctx context.Context, report InventoryReport) ([]byte, error)
}

// BarcodeRenderer genera imágenes PNG de códigos de barras y QR.
type BarcodeRenderer interface {
	Code128PNG(value string) ([]byte, error)
	QRCodePNG(payload string) ([]byte, error)
}
