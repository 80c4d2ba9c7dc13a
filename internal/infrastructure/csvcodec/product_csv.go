// Package csvcodec lee y escribe el CSV de productos.
package csvcodec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
)

// Header encabezado que produce Encode y que Decode espera (reorder_level también se acepta).
var Header = []string{"name", "sku", "category", "supplier", "price", "quantity", "reorderLevel"}

var headerAliases = map[string]string{
	"reorder_level": "reorderLevel",
	"reorderlevel":  "reorderLevel",
}

var _ ports.ProductCSVCodec = (*ProductCSV)(nil)

// ProductCSV implementa ports.ProductCSVCodec con encoding/csv.
type ProductCSV struct{}

// NewProductCSV construye el codec.
func NewProductCSV() *ProductCSV { return &ProductCSV{} }

// Decode lee el encabezado y devuelve una fila cruda por línea de datos (sin validar valores).
// Sin columnas name, category o supplier el archivo se rechaza completo.
func (c *ProductCSV) Decode(r io.Reader) ([]ports.ProductRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError("file", "el archivo CSV está vacío")
		}
		return nil, domain.NewValidationError("file", "CSV inválido: "+err.Error())
	}
	index := headerIndex(header)
	for _, required := range []string{"name", "category", "supplier"} {
		if _, ok := index[required]; !ok {
			return nil, domain.NewValidationError("file", "falta la columna "+required)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var records []ports.ProductRecord
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.NewValidationError("file", "CSV inválido: "+err.Error())
		}
		if isBlank(rec) {
			continue
		}
		records = append(records, ports.ProductRecord{
			Name:         field(rec, "name"),
			SKU:          field(rec, "sku"),
			Category:     field(rec, "category"),
			Supplier:     field(rec, "supplier"),
			Price:        field(rec, "price"),
			Quantity:     field(rec, "quantity"),
			ReorderLevel: field(rec, "reorderLevel"),
		})
	}
	return records, nil
}

// Encode escribe el encabezado y una fila por producto.
func (c *ProductCSV) Encode(w io.Writer, products []*entity.Product) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("csv: encabezado: %w", err)
	}
	for _, p := range products {
		if err := writer.Write([]string{
			p.Name, p.SKU, p.Category, p.Supplier, p.Price.StringFixed(2),
			strconv.Itoa(p.Quantity), strconv.Itoa(p.ReorderLevel),
		}); err != nil {
			return fmt.Errorf("csv: fila %s: %w", p.SKU, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if alias, ok := headerAliases[name]; ok {
			name = alias
		}
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	return index
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
