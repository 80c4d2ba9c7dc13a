package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockwise-api/internal/domain/entity"
)

// MovementTotals sumas independientes de IN y OUT más el número de movimientos.
type MovementTotals struct {
	In    int64
	Out   int64
	Count int64
}

// DailyMovementTotal totales de un día calendario (UTC). Solo aparecen días con actividad.
type DailyMovementTotal struct {
	Day time.Time
	In  int64
	Out int64
}

// DashboardRepository consultas de lectura para el dashboard.
// category vacío = sin filtro; con valor filtra productos y movimientos de productos de esa categoría.
type DashboardRepository interface {
	CountProducts(ctx context.Context, category string) (total, lowStock int64, err error)
	MovementTotals(ctx context.Context, category string) (MovementTotals, error)
	// DailyMovementTotals agrupa por día UTC los movimientos con created_at >= since.
	DailyMovementTotals(ctx context.Context, category string, since time.Time) ([]DailyMovementTotal, error)
	RecentMovements(ctx context.Context, category string, limit int) ([]*entity.StockMovementView, error)
}
