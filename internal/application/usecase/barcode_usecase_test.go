package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/application/usecase"
	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/repository/mocks"
)

func TestBarcodeUseCase_Code128_UsaSKUSinBarcode(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("GetByID", mock.Anything, productID).Return(sampleProduct(), nil)
	renderer := &stubBarcodes{}
	uc := usecase.NewBarcodeUseCase(repo, renderer, fixedClock{fixedNow})

	img, err := uc.Code128(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, "W-1", renderer.code128)
	assert.Equal(t, "W-1-barcode.png", img.Filename)
	assert.Equal(t, []byte("png-code128"), img.PNG)
}

func TestBarcodeUseCase_Code128_BarcodeAsignado(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	p := sampleProduct()
	p.Barcode = "7701234567890"
	repo.On("GetByID", mock.Anything, productID).Return(p, nil)
	renderer := &stubBarcodes{}
	uc := usecase.NewBarcodeUseCase(repo, renderer, fixedClock{fixedNow})

	_, err := uc.Code128(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, "7701234567890", renderer.code128)
}

func TestBarcodeUseCase_QRCode_Payload(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("GetByID", mock.Anything, productID).Return(sampleProduct(), nil)
	renderer := &stubBarcodes{}
	uc := usecase.NewBarcodeUseCase(repo, renderer, fixedClock{fixedNow})

	img, err := uc.QRCode(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, "W-1-qr.png", img.Filename)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(renderer.qr), &payload))
	assert.Equal(t, productID, payload["id"])
	assert.Equal(t, "W-1", payload["sku"])
	assert.Equal(t, "Widget", payload["name"])
	assert.Equal(t, 9.99, payload["price"])
}

func TestBarcodeUseCase_ProductoInexistente(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("GetByID", mock.Anything, productID).Return(nil, nil)
	uc := usecase.NewBarcodeUseCase(repo, &stubBarcodes{}, fixedClock{fixedNow})

	_, err := uc.QRCode(context.Background(), productID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBarcodeUseCase_UpdateBarcode(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	updated := sampleProduct()
	updated.Barcode = "ABC-123"
	repo.On("GetByID", mock.Anything, productID).Return(sampleProduct(), nil)
	repo.On("UpdateBarcode", mock.Anything, productID, "ABC-123", fixedNow).Return(updated, nil)
	uc := usecase.NewBarcodeUseCase(repo, &stubBarcodes{}, fixedClock{fixedNow})

	out, err := uc.UpdateBarcode(context.Background(), productID, dto.UpdateBarcodeRequest{Barcode: " ABC-123 "})
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", out.Barcode)

	_, err = uc.UpdateBarcode(context.Background(), productID, dto.UpdateBarcodeRequest{Barcode: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBarcodeUseCase_GenerateMissing(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("AssignMissingBarcodes", mock.Anything, fixedNow).Return(int64(3), nil)
	uc := usecase.NewBarcodeUseCase(repo, &stubBarcodes{}, fixedClock{fixedNow})

	out, err := uc.GenerateMissing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Updated)
}
