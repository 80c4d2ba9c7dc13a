package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/domain/inventory"
)

// Mensajes por fila de la importación CSV.
const (
	importMissingFields  = "missing required fields"
	importInvalidNumbers = "invalid numeric values"
	importStoreFailed    = "could not save product"
)

// Import procesa un CSV de productos fila a fila. Una fila inválida no aborta la importación:
// se cuenta como skipped y se reporta en Errors. SKU existente -> se actualiza; si no, se crea.
func (uc *ProductUseCase) Import(ctx context.Context, r io.Reader) (*dto.ImportSummary, error) {
	records, err := uc.csv.Decode(r)
	if err != nil {
		return nil, err
	}

	summary := &dto.ImportSummary{Errors: []dto.ImportRowError{}}
	skip := func(row int, msg string) {
		summary.Skipped++
		summary.Errors = append(summary.Errors, dto.ImportRowError{Row: row, Message: msg})
	}

	for i, rec := range records {
		row := i + 1
		rec = trimRecord(rec)
		if rec.Name == "" || rec.Category == "" || rec.Supplier == "" {
			skip(row, importMissingFields)
			continue
		}
		p, ok := recordValues(rec)
		if !ok {
			skip(row, importInvalidNumbers)
			continue
		}

		created, err := uc.upsertImported(ctx, p)
		if err != nil {
			uc.log.Warn().Err(err).Int("row", row).Str("sku", rec.SKU).Msg("import: fila no guardada")
			skip(row, importStoreFailed)
			continue
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}

	uc.log.Info().
		Int("created", summary.Created).
		Int("updated", summary.Updated).
		Int("skipped", summary.Skipped).
		Msg("import: CSV de productos procesado")
	return summary, nil
}

// upsertImported actualiza el producto con el mismo SKU o crea uno nuevo. Devuelve true si se creó.
func (uc *ProductUseCase) upsertImported(ctx context.Context, in *entity.Product) (bool, error) {
	now := uc.clock.Now()
	if in.SKU != "" {
		existing, err := uc.repo.GetBySKU(ctx, in.SKU)
		if err != nil {
			return false, fmt.Errorf("buscar sku: %w", err)
		}
		if existing != nil {
			existing.Name = in.Name
			existing.Category = in.Category
			existing.Supplier = in.Supplier
			existing.Price = in.Price
			existing.Quantity = in.Quantity
			existing.ReorderLevel = in.ReorderLevel
			existing.UpdatedAt = now
			if err := uc.repo.Update(ctx, existing); err != nil {
				return false, fmt.Errorf("actualizar producto: %w", err)
			}
			return false, nil
		}
	}

	in.ID = uc.ids.NewID()
	in.Variants = []entity.Variant{}
	in.CreatedAt = now
	in.UpdatedAt = now
	if err := uc.create(ctx, in); err != nil {
		return false, err
	}
	return true, nil
}

// importQuantity exige un entero dentro del rango de las columnas de existencias.
func importQuantity(d decimal.Decimal) bool {
	return d.IsInteger() && d.LessThanOrEqual(decimal.NewFromInt(inventory.MaxQuantity))
}

func trimRecord(rec ports.ProductRecord) ports.ProductRecord {
	return ports.ProductRecord{
		Name:         strings.TrimSpace(rec.Name),
		SKU:          strings.TrimSpace(rec.SKU),
		Category:     strings.TrimSpace(rec.Category),
		Supplier:     strings.TrimSpace(rec.Supplier),
		Price:        strings.TrimSpace(rec.Price),
		Quantity:     strings.TrimSpace(rec.Quantity),
		ReorderLevel: strings.TrimSpace(rec.ReorderLevel),
	}
}

// recordValues convierte los campos numéricos; cantidades deben ser enteras.
func recordValues(rec ports.ProductRecord) (*entity.Product, bool) {
	price, ok := parseImportNumber(rec.Price)
	if !ok || !inventory.ValidPrice(price) {
		return nil, false
	}
	qty, ok := parseImportNumber(rec.Quantity)
	if !ok || !importQuantity(qty) {
		return nil, false
	}
	reorder, ok := parseImportNumber(rec.ReorderLevel)
	if !ok || !importQuantity(reorder) {
		return nil, false
	}
	return &entity.Product{
		SKU:          rec.SKU,
		Name:         rec.Name,
		Category:     rec.Category,
		Supplier:     rec.Supplier,
		Price:        price.Round(2),
		Quantity:     int(qty.IntPart()),
		ReorderLevel: int(reorder.IntPart()),
	}, true
}
