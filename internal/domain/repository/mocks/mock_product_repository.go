package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*MockProductRepository)(nil)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	args := m.Called(ctx, sku)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, filter repository.ProductFilter, sort repository.ProductSort, limit, offset int) ([]*entity.Product, int, error) {
	args := m.Called(ctx, filter, sort, limit, offset)
	var list []*entity.Product
	if l := args.Get(0); l != nil {
		list = l.([]*entity.Product)
	}
	return list, args.Int(1), args.Error(2)
}

func (m *MockProductRepository) ListAll(ctx context.Context, filter repository.ProductFilter, sort repository.ProductSort) ([]*entity.Product, error) {
	args := m.Called(ctx, filter, sort)
	if l := args.Get(0); l != nil {
		return l.([]*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) BulkUpdate(ctx context.Context, ids []string, fields repository.ProductBulkFields, at time.Time) (int64, int64, error) {
	args := m.Called(ctx, ids, fields, at)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) AdjustQuantity(ctx context.Context, id string, delta int, at time.Time) (*entity.Product, error) {
	args := m.Called(ctx, id, delta, at)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) UpdateBarcode(ctx context.Context, id, barcode string, at time.Time) (*entity.Product, error) {
	args := m.Called(ctx, id, barcode, at)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) AssignMissingBarcodes(ctx context.Context, at time.Time) (int64, error) {
	args := m.Called(ctx, at)
	return args.Get(0).(int64), args.Error(1)
}
