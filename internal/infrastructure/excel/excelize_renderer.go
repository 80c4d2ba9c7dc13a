// Package excel genera libros .xlsx con excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
)

// Nombres de hoja.
const (
	ProductsSheet  = "Products"
	MovementsSheet = "Stock Movements"
)

const dateLayout = "2006-01-02 15:04:05"

var (
	productHeaders  = []any{"SKU", "Name", "Category", "Supplier", "Price", "Quantity", "Reorder Level", "Low Stock", "Barcode", "Created At"}
	movementHeaders = []any{"Date", "Type", "Quantity", "Product", "SKU", "Category", "User", "Email"}
)

var _ ports.SpreadsheetRenderer = (*Renderer)(nil)

// Renderer implementa ports.SpreadsheetRenderer.
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// ProductsWorkbook un producto por fila; el precio se escribe como número con dos decimales.
func (r *Renderer) ProductsWorkbook(products []*entity.Product) ([]byte, error) {
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		rows = append(rows, []any{
			p.SKU, p.Name, p.Category, p.Supplier, p.Price.InexactFloat64(), p.Quantity, p.ReorderLevel,
			yesNo(p.LowStock()), p.Barcode, p.CreatedAt.UTC().Format(dateLayout),
		})
	}
	return build(ProductsSheet, productHeaders, rows, map[int]bool{5: true})
}

// StockMovementsWorkbook un movimiento por fila, más recientes primero.
func (r *Renderer) StockMovementsWorkbook(movements []*entity.StockMovementView) ([]byte, error) {
	rows := make([][]any, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, []any{
			m.CreatedAt.UTC().Format(dateLayout), m.Type, m.Quantity,
			m.ProductName, m.ProductSKU, m.ProductCategory, m.ActorName, m.ActorEmail,
		})
	}
	return build(MovementsSheet, movementHeaders, rows, nil)
}

// build escribe una hoja con encabezado resaltado; moneyCols son columnas (1-based) con formato 0.00.
func build(sheet string, headers []any, rows [][]any, moneyCols map[int]bool) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo encabezado: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo moneda: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("excel: encabezado: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("excel: estilo encabezado: %w", err)
	}

	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}
	for c := range moneyCols {
		if len(rows) == 0 {
			break
		}
		name, err := excelize.ColumnNumberToName(c)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("%s2", name), fmt.Sprintf("%s%d", name, len(rows)+1), moneyStyle); err != nil {
			return nil, fmt.Errorf("excel: estilo moneda: %w", err)
		}
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return nil, fmt.Errorf("excel: ancho de columnas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
