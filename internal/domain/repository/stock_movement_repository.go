package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockwise-api/internal/domain/entity"
)

// MovementFilter filtros del listado del ledger. Los campos vacíos no filtran.
type MovementFilter struct {
	ProductID string
	Type      string
	CreatedBy string
}

// StockMovementRepository define el puerto de persistencia para el ledger (append-only).
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// List devuelve los movimientos más recientes primero, con producto y actor resueltos, y el total.
	List(ctx context.Context, filter MovementFilter, limit, offset int) ([]*entity.StockMovementView, int, error)
	ListSince(ctx context.Context, since time.Time) ([]*entity.StockMovementView, error)
}
