package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*MockDashboardRepository)(nil)

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) CountProducts(ctx context.Context, category string) (int64, int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockDashboardRepository) MovementTotals(ctx context.Context, category string) (repository.MovementTotals, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(repository.MovementTotals), args.Error(1)
}

func (m *MockDashboardRepository) DailyMovementTotals(ctx context.Context, category string, since time.Time) ([]repository.DailyMovementTotal, error) {
	args := m.Called(ctx, category, since)
	if l := args.Get(0); l != nil {
		return l.([]repository.DailyMovementTotal), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDashboardRepository) RecentMovements(ctx context.Context, category string, limit int) ([]*entity.StockMovementView, error) {
	args := m.Called(ctx, category, limit)
	if l := args.Get(0); l != nil {
		return l.([]*entity.StockMovementView), args.Error(1)
	}
	return nil, args.Error(1)
}
