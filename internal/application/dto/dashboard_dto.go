package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Los totales de IN/OUT son sumas independientes sobre todo el ledger; la tendencia cubre la ventana pedida.
type DashboardSummaryDTO struct {
	TotalProducts   int64                   `json:"total_products"`
	LowStockCount   int64                   `json:"low_stock_count"`
	TotalStockIn    int64                   `json:"total_stock_in"`
	TotalStockOut   int64                   `json:"total_stock_out"`
	TotalMovements  int64                   `json:"total_movements"`
	MovementTrend   []TrendPointDTO         `json:"movement_trend"`   // exactamente `days` puntos, termina hoy
	RecentMovements []StockMovementResponse `json:"recent_movements"` // últimos 5, sin importar la ventana
}

// TrendPointDTO totales de un día (YYYY-MM-DD, UTC).
type TrendPointDTO struct {
	Date string `json:"date"`
	In   int64  `json:"in"`
	Out  int64  `json:"out"`
}
