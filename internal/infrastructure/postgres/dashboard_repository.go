package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de agregación para el dashboard.
// Con category, los movimientos se filtran por la categoría actual del producto.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el repositorio de lectura del dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountProducts total de productos y cuántos están en o por debajo del punto de reorden.
func (r *DashboardRepo) CountProducts(ctx context.Context, category string) (int64, int64, error) {
	query := `
		SELECT count(*), count(*) FILTER (WHERE quantity <= reorder_level)
		FROM products
		WHERE ($1 = '' OR category = $1)`
	var total, low int64
	if err := r.pool.QueryRow(ctx, query, category).Scan(&total, &low); err != nil {
		return 0, 0, fmt.Errorf("count products: %w", err)
	}
	return total, low, nil
}

// MovementTotals sumas históricas de IN y OUT y número de movimientos.
func (r *DashboardRepo) MovementTotals(ctx context.Context, category string) (repository.MovementTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'IN'), 0),
			COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'OUT'), 0),
			count(*)
		FROM stock_movements m
		WHERE ($1 = '' OR EXISTS (
			SELECT 1 FROM products p WHERE p.id = m.product_id AND p.category = $1
		))`
	var t repository.MovementTotals
	if err := r.pool.QueryRow(ctx, query, category).Scan(&t.In, &t.Out, &t.Count); err != nil {
		return repository.MovementTotals{}, fmt.Errorf("movement totals: %w", err)
	}
	return t, nil
}

// DailyMovementTotals totales por día UTC desde since. Los días sin actividad no aparecen.
func (r *DashboardRepo) DailyMovementTotals(ctx context.Context, category string, since time.Time) ([]repository.DailyMovementTotal, error) {
	query := `
		SELECT
			date_trunc('day', m.created_at AT TIME ZONE 'UTC') AS day,
			COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'IN'), 0),
			COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'OUT'), 0)
		FROM stock_movements m
		WHERE m.created_at >= $2
			AND ($1 = '' OR EXISTS (
				SELECT 1 FROM products p WHERE p.id = m.product_id AND p.category = $1
			))
		GROUP BY day
		ORDER BY day`
	rows, err := r.pool.Query(ctx, query, category, since)
	if err != nil {
		return nil, fmt.Errorf("daily movement totals: %w", err)
	}
	defer rows.Close()
	var out []repository.DailyMovementTotal
	for rows.Next() {
		var d repository.DailyMovementTotal
		if err := rows.Scan(&d.Day, &d.In, &d.Out); err != nil {
			return nil, fmt.Errorf("scan daily totals: %w", err)
		}
		d.Day = time.Date(d.Day.Year(), d.Day.Month(), d.Day.Day(), 0, 0, 0, 0, time.UTC)
		out = append(out, d)
	}
	return out, rows.Err()
}

// RecentMovements los últimos limit movimientos con producto y actor resueltos.
func (r *DashboardRepo) RecentMovements(ctx context.Context, category string, limit int) ([]*entity.StockMovementView, error) {
	query := movementViewSelect + `
		WHERE ($1 = '' OR p.category = $1)
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $2`
	rows, err := r.pool.Query(ctx, query, category, limit)
	if err != nil {
		return nil, fmt.Errorf("recent movements: %w", err)
	}
	return scanMovementViews(rows)
}
