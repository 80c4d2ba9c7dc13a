package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/domain/inventory"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, category, supplier, price, quantity, reorder_level,
	COALESCE(barcode, ''), variants, created_at, updated_at`

// Columnas ordenables; cualquier otro valor cae en created_at.
var productOrderColumns = map[string]bool{
	"name": true, "sku": true, "category": true, "supplier": true, "price": true,
	"quantity": true, "reorder_level": true, "created_at": true, "updated_at": true,
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. SKU repetido -> domain.ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	variants, err := marshalVariants(p.Variants)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (id, sku, name, category, supplier, price, quantity, reorder_level, barcode, variants, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12)`
	_, err = r.q.Exec(ctx, query,
		p.ID, p.SKU, p.Name, p.Category, p.Supplier, p.Price, p.Quantity, p.ReorderLevel,
		p.Barcode, variants, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetBySKU obtiene un producto por SKU; (nil, nil) si no existe.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1`, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// Update reescribe todos los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	variants, err := marshalVariants(p.Variants)
	if err != nil {
		return err
	}
	query := `
		UPDATE products SET sku = $2, name = $3, category = $4, supplier = $5, price = $6, quantity = $7,
			reorder_level = $8, barcode = NULLIF($9, ''), variants = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.SKU, p.Name, p.Category, p.Supplier, p.Price, p.Quantity, p.ReorderLevel,
		p.Barcode, variants, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. El ledger no tiene FK: sus entradas se conservan.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve una página de productos y el total que cumple el filtro.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter, sort repository.ProductSort, limit, offset int) ([]*entity.Product, int, error) {
	where, args := productWhere(filter)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	n := len(args)
	query := `SELECT ` + productColumns + ` FROM products` + where + productOrderBy(sort) +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, n+1, n+2)
	list, err := r.query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListAll devuelve todos los productos que cumplen el filtro (exportaciones).
func (r *ProductRepo) ListAll(ctx context.Context, filter repository.ProductFilter, sort repository.ProductSort) ([]*entity.Product, error) {
	where, args := productWhere(filter)
	return r.query(ctx, `SELECT `+productColumns+` FROM products`+where+productOrderBy(sort), args...)
}

// BulkUpdate escribe los campos presentes en fields en una sola sentencia.
// matched cuenta los ids existentes; modified solo los que cambiaron algún valor.
func (r *ProductRepo) BulkUpdate(ctx context.Context, ids []string, fields repository.ProductBulkFields, at time.Time) (int64, int64, error) {
	query := `
		WITH matched AS (
			SELECT id FROM products WHERE id = ANY($1::uuid[])
		), updated AS (
			UPDATE products p SET
				category      = COALESCE($2::text, p.category),
				supplier      = COALESCE($3::text, p.supplier),
				price         = COALESCE($4::numeric, p.price),
				reorder_level = COALESCE($5::int, p.reorder_level),
				updated_at    = $6
			FROM matched m
			WHERE p.id = m.id AND (
				($2::text IS NOT NULL AND p.category IS DISTINCT FROM $2::text) OR
				($3::text IS NOT NULL AND p.supplier IS DISTINCT FROM $3::text) OR
				($4::numeric IS NOT NULL AND p.price IS DISTINCT FROM $4::numeric) OR
				($5::int IS NOT NULL AND p.reorder_level IS DISTINCT FROM $5::int)
			)
			RETURNING p.id
		)
		SELECT (SELECT count(*) FROM matched), (SELECT count(*) FROM updated)`
	var matched, modified int64
	err := r.q.QueryRow(ctx, query,
		ids, fields.Category, fields.Supplier, fields.Price, fields.ReorderLevel, at,
	).Scan(&matched, &modified)
	if err != nil {
		return 0, 0, fmt.Errorf("bulk update products: %w", err)
	}
	return matched, modified, nil
}

// BulkDelete elimina los productos indicados y devuelve cuántos existían.
func (r *ProductRepo) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return 0, fmt.Errorf("bulk delete products: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// AdjustQuantity suma delta a quantity solo si el resultado no queda negativo, en una sola sentencia.
// Producto inexistente -> ErrNotFound; resultado negativo -> ErrInsufficientStock.
func (r *ProductRepo) AdjustQuantity(ctx context.Context, id string, delta int, at time.Time) (*entity.Product, error) {
	query := `
		UPDATE products SET quantity = quantity + $2, updated_at = $3
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING ` + productColumns
	p, err := scanProduct(r.q.QueryRow(ctx, query, id, delta, at))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, adjustQuantityError(err)
	}

	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check product: %w", err)
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrInsufficientStock
}

// adjustQuantityError traduce el desborde de la columna INTEGER en un error de validación.
func adjustQuantityError(err error) error {
	if pgErrorCode(err) == codeNumericOutOfRange {
		return domain.NewValidationError("quantity",
			fmt.Sprintf("las existencias superarían el máximo de %d", inventory.MaxQuantity))
	}
	return fmt.Errorf("adjust quantity: %w", err)
}

// UpdateBarcode asigna (o limpia con "") el barcode del producto.
func (r *ProductRepo) UpdateBarcode(ctx context.Context, id, barcode string, at time.Time) (*entity.Product, error) {
	query := `
		UPDATE products SET barcode = NULLIF($2, ''), updated_at = $3
		WHERE id = $1
		RETURNING ` + productColumns
	p, err := scanProduct(r.q.QueryRow(ctx, query, id, barcode, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update barcode: %w", err)
	}
	return p, nil
}

// AssignMissingBarcodes usa el SKU como barcode en los productos que no tienen uno.
func (r *ProductRepo) AssignMissingBarcodes(ctx context.Context, at time.Time) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET barcode = sku, updated_at = $1 WHERE barcode IS NULL OR barcode = ''`, at)
	if err != nil {
		return 0, fmt.Errorf("assign barcodes: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *ProductRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// productWhere arma el WHERE del listado; search busca en name, sku, category y supplier.
func productWhere(f repository.ProductFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Search != "" {
		args = append(args, containsPattern(f.Search))
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE $%[1]d OR sku ILIKE $%[1]d OR category ILIKE $%[1]d OR supplier ILIKE $%[1]d)", n))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Supplier != "" {
		args = append(args, f.Supplier)
		conds = append(conds, fmt.Sprintf("supplier = $%d", len(args)))
	}
	if f.LowStock {
		conds = append(conds, "quantity <= reorder_level")
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func productOrderBy(s repository.ProductSort) string {
	col := s.Field
	if !productOrderColumns[col] {
		col = "created_at"
	}
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir + ", id " + dir
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var variants []byte
	if err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Category, &p.Supplier, &p.Price, &p.Quantity, &p.ReorderLevel,
		&p.Barcode, &variants, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Variants = []entity.Variant{}
	if len(variants) > 0 {
		if err := json.Unmarshal(variants, &p.Variants); err != nil {
			return nil, fmt.Errorf("decode variants: %w", err)
		}
	}
	return &p, nil
}

func marshalVariants(v []entity.Variant) ([]byte, error) {
	if len(v) == 0 {
		return []byte("[]"), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode variants: %w", err)
	}
	return b, nil
}
