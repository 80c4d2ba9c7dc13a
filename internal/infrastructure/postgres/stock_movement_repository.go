package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// movementViewSelect movimiento con producto y actor resueltos. LEFT JOIN: el producto o el
// usuario pueden haber sido eliminados y la entrada del ledger se conserva.
const movementViewSelect = `
	SELECT m.id, m.product_id, m.type, m.quantity, m.created_by, m.created_at,
		COALESCE(p.name, ''), COALESCE(p.sku, ''), COALESCE(p.category, ''),
		COALESCE(u.name, ''), COALESCE(u.email, '')
	FROM stock_movements m
	LEFT JOIN products p ON p.id = m.product_id
	LEFT JOIN users u ON u.id = m.created_by`

// StockMovementRepo ledger de movimientos sobre PostgreSQL (append-only).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el repositorio. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create registra un movimiento.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query, m.ID, m.ProductID, m.Type, m.Quantity, m.CreatedBy, m.CreatedAt); err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List movimientos filtrados, más recientes primero, con el total.
func (r *StockMovementRepo) List(ctx context.Context, filter repository.MovementFilter, limit, offset int) ([]*entity.StockMovementView, int, error) {
	var conds []string
	var args []any
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		conds = append(conds, fmt.Sprintf("m.product_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("m.type = $%d", len(args)))
	}
	if filter.CreatedBy != "" {
		args = append(args, filter.CreatedBy)
		conds = append(conds, fmt.Sprintf("m.created_by = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM stock_movements m`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock movements: %w", err)
	}

	n := len(args)
	query := movementViewSelect + where +
		fmt.Sprintf(` ORDER BY m.created_at DESC, m.id DESC LIMIT $%d OFFSET $%d`, n+1, n+2)
	rows, err := r.q.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock movements: %w", err)
	}
	list, err := scanMovementViews(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListSince movimientos con created_at >= since, más recientes primero (reporte Excel).
func (r *StockMovementRepo) ListSince(ctx context.Context, since time.Time) ([]*entity.StockMovementView, error) {
	rows, err := r.q.Query(ctx, movementViewSelect+` WHERE m.created_at >= $1 ORDER BY m.created_at DESC, m.id DESC`, since)
	if err != nil {
		return nil, fmt.Errorf("list stock movements since: %w", err)
	}
	return scanMovementViews(rows)
}

func scanMovementViews(rows pgx.Rows) ([]*entity.StockMovementView, error) {
	defer rows.Close()
	list := make([]*entity.StockMovementView, 0)
	for rows.Next() {
		var v entity.StockMovementView
		if err := rows.Scan(
			&v.ID, &v.ProductID, &v.Type, &v.Quantity, &v.CreatedBy, &v.CreatedAt,
			&v.ProductName, &v.ProductSKU, &v.ProductCategory, &v.ActorName, &v.ActorEmail,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
