// Package analytics contiene los casos de uso de lectura del dashboard de inventario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
)

const (
	DefaultTrendDays     = 7
	MaxTrendDays         = 365
	recentMovementsLimit = 5 // últimos movimientos en el widget
	trendDateLayout      = "2006-01-02"
)

// DashboardUseCase genera el resumen del inventario: totales, tendencia diaria y últimos movimientos.
//
// Fuente de datos: DashboardRepository (consultas read-only).
type DashboardUseCase struct {
	repo  repository.DashboardRepository
	clock ports.Clock
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository, clock ports.Clock) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, clock: clock}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas en paralelo:
//  1. CountProducts         → TotalProducts + LowStockCount
//  2. MovementTotals        → TotalStockIn + TotalStockOut + TotalMovements
//  3. DailyMovementTotals   → MovementTrend (ventana de `days` días, UTC)
//  4. RecentMovements(5)    → RecentMovements
func (uc *DashboardUseCase) GetSummary(ctx context.Context, days int, category string) (*dto.DashboardSummaryDTO, error) {
	if days < 1 || days > MaxTrendDays {
		return nil, domain.NewValidationError("days", fmt.Sprintf("debe estar entre 1 y %d", MaxTrendDays))
	}

	// ── Ventana de la tendencia ───────────────────────────────────────────────
	now := uc.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	since := today.AddDate(0, 0, -(days - 1))

	// ── Goroutines para paralelizar las consultas DB ──────────────────────────
	type countsResult struct {
		total, low int64
		err        error
	}
	type totalsResult struct {
		totals repository.MovementTotals
		err    error
	}
	type dailyResult struct {
		rows []repository.DailyMovementTotal
		err  error
	}
	type recentResult struct {
		items []dto.StockMovementResponse
		err   error
	}

	countsCh := make(chan countsResult, 1)
	totalsCh := make(chan totalsResult, 1)
	dailyCh := make(chan dailyResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		total, low, err := uc.repo.CountProducts(ctx, category)
		countsCh <- countsResult{total, low, err}
	}()
	go func() {
		totals, err := uc.repo.MovementTotals(ctx, category)
		totalsCh <- totalsResult{totals, err}
	}()
	go func() {
		rows, err := uc.repo.DailyMovementTotals(ctx, category, since)
		dailyCh <- dailyResult{rows, err}
	}()
	go func() {
		views, err := uc.repo.RecentMovements(ctx, category, recentMovementsLimit)
		recentCh <- recentResult{dto.NewStockMovementViewResponses(views), err}
	}()

	counts := <-countsCh
	totals := <-totalsCh
	daily := <-dailyCh
	recent := <-recentCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de productos: %w", counts.err)
	}
	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de movimientos: %w", totals.err)
	}
	if daily.err != nil {
		return nil, fmt.Errorf("dashboard: tendencia diaria: %w", daily.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", recent.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:   counts.total,
		LowStockCount:   counts.low,
		TotalStockIn:    totals.totals.In,
		TotalStockOut:   totals.totals.Out,
		TotalMovements:  totals.totals.Count,
		MovementTrend:   buildTrend(daily.rows, since, days),
		RecentMovements: recent.items,
	}, nil
}

// buildTrend rellena la serie: exactamente `days` puntos desde `since`, en orden cronológico.
// Los días sin actividad quedan en cero.
func buildTrend(rows []repository.DailyMovementTotal, since time.Time, days int) []dto.TrendPointDTO {
	byDay := make(map[string]repository.DailyMovementTotal, len(rows))
	for _, r := range rows {
		byDay[r.Day.UTC().Format(trendDateLayout)] = r
	}
	trend := make([]dto.TrendPointDTO, 0, days)
	for i := 0; i < days; i++ {
		key := since.AddDate(0, 0, i).Format(trendDateLayout)
		point := dto.TrendPointDTO{Date: key}
		if r, ok := byDay[key]; ok {
			point.In = r.In
			point.Out = r.Out
		}
		trend = append(trend, point)
	}
	return trend
}
