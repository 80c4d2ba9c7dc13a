package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
)

// Ventana del reporte de movimientos en días.
const (
	DefaultStockReportDays = 30
	MaxStockReportDays     = 365
)

// ExportUseCase genera exportaciones del catálogo (CSV, Excel, PDF) y el reporte de movimientos.
type ExportUseCase struct {
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	csv       ports.ProductCSVCodec
	sheets    ports.SpreadsheetRenderer
	pdf       ports.PDFRenderer
	clock     ports.Clock
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	csv ports.ProductCSVCodec,
	sheets ports.SpreadsheetRenderer,
	pdf ports.PDFRenderer,
	clock ports.Clock,
) *ExportUseCase {
	return &ExportUseCase{
		products:  products,
		movements: movements,
		csv:       csv,
		sheets:    sheets,
		pdf:       pdf,
		clock:     clock,
	}
}

// ProductsCSV exporta los productos filtrados con el mismo encabezado que acepta la importación.
func (uc *ExportUseCase) ProductsCSV(ctx context.Context, q dto.ProductListQuery) ([]byte, error) {
	products, err := uc.products.ListAll(ctx, ProductFilterFromQuery(q), ParseProductSort(q.Sort))
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	var buf bytes.Buffer
	if err := uc.csv.Encode(&buf, products); err != nil {
		return nil, fmt.Errorf("generar csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ProductsExcel exporta los productos filtrados a .xlsx.
func (uc *ExportUseCase) ProductsExcel(ctx context.Context, q dto.ProductListQuery) ([]byte, error) {
	products, err := uc.products.ListAll(ctx, ProductFilterFromQuery(q), ParseProductSort(q.Sort))
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	out, err := uc.sheets.ProductsWorkbook(products)
	if err != nil {
		return nil, fmt.Errorf("generar excel: %w", err)
	}
	return out, nil
}

// ProductsPDF reporte PDF de inventario con totales y conteo de stock bajo.
func (uc *ExportUseCase) ProductsPDF(ctx context.Context, q dto.ProductListQuery) ([]byte, error) {
	products, err := uc.products.ListAll(ctx, ProductFilterFromQuery(q), ParseProductSort(q.Sort))
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	report := ports.InventoryReport{
		GeneratedAt: uc.clock.Now(),
		Products:    products,
		TotalValue:  decimal.Zero,
	}
	for _, p := range products {
		if p.LowStock() {
			report.LowStockCount++
		}
		report.TotalValue = report.TotalValue.Add(p.InventoryValue())
	}
	out, err := uc.pdf.InventoryReport(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("generar pdf: %w", err)
	}
	return out, nil
}

// StockReport .xlsx con los movimientos de los últimos days días (0 -> 30).
func (uc *ExportUseCase) StockReport(ctx context.Context, days int) ([]byte, error) {
	if days == 0 {
		days = DefaultStockReportDays
	}
	if days < 1 || days > MaxStockReportDays {
		return nil, domain.NewValidationError("days", fmt.Sprintf("debe estar entre 1 y %d", MaxStockReportDays))
	}
	since := uc.clock.Now().Add(-time.Duration(days) * 24 * time.Hour)
	views, err := uc.movements.ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	out, err := uc.sheets.StockMovementsWorkbook(views)
	if err != nil {
		return nil, fmt.Errorf("generar excel: %w", err)
	}
	return out, nil
}
