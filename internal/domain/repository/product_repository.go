package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockwise-api/internal/domain/entity"
)

// ProductFilter filtros del listado de productos. Los campos vacíos no filtran.
type ProductFilter struct {
	Search   string // subcadena sin distinguir mayúsculas sobre name, sku, category, supplier
	Category string
	Supplier string
	LowStock bool
}

// ProductSort orden del listado. Field debe pertenecer a la lista permitida.
type ProductSort struct {
	Field string
	Desc  bool
}

// ProductBulkFields campos permitidos en la actualización masiva. Nunca incluye Quantity.
type ProductBulkFields struct {
	Category     *string
	Supplier     *string
	Price        *decimal.Decimal
	ReorderLevel *int
}

// IsEmpty indica que no hay ningún campo a escribir.
func (f ProductBulkFields) IsEmpty() bool {
	return f.Category == nil && f.Supplier == nil && f.Price == nil && f.ReorderLevel == nil
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetBySKU devuelven (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ProductFilter, sort ProductSort, limit, offset int) ([]*entity.Product, int, error)
	ListAll(ctx context.Context, filter ProductFilter, sort ProductSort) ([]*entity.Product, error)
	BulkUpdate(ctx context.Context, ids []string, fields ProductBulkFields, at time.Time) (matched, modified int64, err error)
	BulkDelete(ctx context.Context, ids []string) (int64, error)

	// AdjustQuantity suma delta a las existencias en una sola sentencia condicional.
	// Devuelve ErrNotFound si el producto no existe y ErrInsufficientStock si quedaría negativo.
	AdjustQuantity(ctx context.Context, id string, delta int, at time.Time) (*entity.Product, error)

	UpdateBarcode(ctx context.Context, id, barcode string, at time.Time) (*entity.Product, error)
	// AssignMissingBarcodes copia el SKU como barcode en los productos que no tienen uno.
	AssignMissingBarcodes(ctx context.Context, at time.Time) (int64, error)
}
