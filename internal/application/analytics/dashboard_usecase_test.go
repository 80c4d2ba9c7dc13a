package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwise-api/internal/application/analytics"
	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
	"github.com/jhoicas/stockwise-api/internal/domain/repository/mocks"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// 2024-03-10 01:30 en Bogotá ya es 2024-03-10 06:30 UTC; la serie usa días UTC.
var now = time.Date(2024, 3, 10, 6, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func expectAll(repo *mocks.MockDashboardRepository, category string, since time.Time, daily []repository.DailyMovementTotal) {
	repo.On("CountProducts", mock.Anything, category).Return(int64(12), int64(3), nil).Once()
	repo.On("MovementTotals", mock.Anything, category).
		Return(repository.MovementTotals{In: 40, Out: 25, Count: 9}, nil).Once()
	repo.On("DailyMovementTotals", mock.Anything, category, since).Return(daily, nil).Once()
	repo.On("RecentMovements", mock.Anything, category, 5).Return([]*entity.StockMovementView{
		{
			StockMovement: entity.StockMovement{ID: "m9", Type: "OUT", Quantity: 2},
			ProductName:   "Mouse",
			ProductSKU:    "SKU-2",
			ActorName:     "Ana",
			ActorEmail:    "ana@example.com",
		},
	}, nil).Once()
}

func TestGetSummary_TendenciaDensaTerminaHoy(t *testing.T) {
	repo := new(mocks.MockDashboardRepository)
	uc := analytics.NewDashboardUseCase(repo, fixedClock{now})

	since := day(2024, 3, 4)
	expectAll(repo, "", since, []repository.DailyMovementTotal{
		{Day: day(2024, 3, 5), In: 10, Out: 0},
		{Day: day(2024, 3, 10), In: 0, Out: 4},
	})

	out, err := uc.GetSummary(context.Background(), 7, "")
	require.NoError(t, err)

	require.Len(t, out.MovementTrend, 7)
	assert.Equal(t, "2024-03-04", out.MovementTrend[0].Date)
	assert.Equal(t, "2024-03-10", out.MovementTrend[6].Date)
	assert.Equal(t, int64(10), out.MovementTrend[1].In)
	assert.Equal(t, int64(4), out.MovementTrend[6].Out)
	for i, p := range out.MovementTrend {
		if i != 1 && i != 6 {
			assert.Zero(t, p.In, p.Date)
			assert.Zero(t, p.Out, p.Date)
		}
	}

	assert.Equal(t, int64(12), out.TotalProducts)
	assert.Equal(t, int64(3), out.LowStockCount)
	assert.Equal(t, int64(40), out.TotalStockIn)
	assert.Equal(t, int64(25), out.TotalStockOut)
	assert.Equal(t, int64(9), out.TotalMovements)
	require.Len(t, out.RecentMovements, 1)
	assert.Equal(t, "Mouse", out.RecentMovements[0].Product.Name)
	repo.AssertExpectations(t)
}

func TestGetSummary_UnDia(t *testing.T) {
	repo := new(mocks.MockDashboardRepository)
	uc := analytics.NewDashboardUseCase(repo, fixedClock{now})
	expectAll(repo, "Periféricos", day(2024, 3, 10), nil)

	out, err := uc.GetSummary(context.Background(), 1, "Periféricos")
	require.NoError(t, err)
	require.Len(t, out.MovementTrend, 1)
	assert.Equal(t, "2024-03-10", out.MovementTrend[0].Date)
	repo.AssertExpectations(t)
}

func TestGetSummary_CruzaCambioDeMes(t *testing.T) {
	repo := new(mocks.MockDashboardRepository)
	uc := analytics.NewDashboardUseCase(repo, fixedClock{now})
	expectAll(repo, "", day(2024, 2, 10), nil)

	out, err := uc.GetSummary(context.Background(), 30, "")
	require.NoError(t, err)
	require.Len(t, out.MovementTrend, 30)
	assert.Equal(t, "2024-02-29", out.MovementTrend[19].Date, "2024 es bisiesto")
	for i := 1; i < len(out.MovementTrend); i++ {
		assert.Less(t, out.MovementTrend[i-1].Date, out.MovementTrend[i].Date)
	}
}

func TestGetSummary_DiasFueraDeRango(t *testing.T) {
	repo := new(mocks.MockDashboardRepository)
	uc := analytics.NewDashboardUseCase(repo, fixedClock{now})

	for _, d := range []int{0, -1, 366} {
		_, err := uc.GetSummary(context.Background(), d, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "days=%d", d)
	}
	repo.AssertNotCalled(t, "CountProducts", mock.Anything, mock.Anything)
}

func TestGetSummary_ErrorDelRepositorio(t *testing.T) {
	repo := new(mocks.MockDashboardRepository)
	uc := analytics.NewDashboardUseCase(repo, fixedClock{now})

	boom := errors.New("conexión perdida")
	repo.On("CountProducts", mock.Anything, "").Return(int64(0), int64(0), boom).Once()
	repo.On("MovementTotals", mock.Anything, "").Return(repository.MovementTotals{}, nil).Once()
	repo.On("DailyMovementTotals", mock.Anything, "", mock.Anything).Return(nil, nil).Once()
	repo.On("RecentMovements", mock.Anything, "", 5).Return(nil, nil).Once()

	_, err := uc.GetSummary(context.Background(), 7, "")
	assert.ErrorIs(t, err, boom)
}
