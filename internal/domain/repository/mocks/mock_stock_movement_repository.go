package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*MockStockMovementRepository)(nil)

type MockStockMovementRepository struct {
	mock.Mock
}

func (m *MockStockMovementRepository) Create(ctx context.Context, movement *entity.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockMovementRepository) List(ctx context.Context, filter repository.MovementFilter, limit, offset int) ([]*entity.StockMovementView, int, error) {
	args := m.Called(ctx, filter, limit, offset)
	var list []*entity.StockMovementView
	if l := args.Get(0); l != nil {
		list = l.([]*entity.StockMovementView)
	}
	return list, args.Int(1), args.Error(2)
}

func (m *MockStockMovementRepository) ListSince(ctx context.Context, since time.Time) ([]*entity.StockMovementView, error) {
	args := m.Called(ctx, since)
	if l := args.Get(0); l != nil {
		return l.([]*entity.StockMovementView), args.Error(1)
	}
	return nil, args.Error(1)
}
