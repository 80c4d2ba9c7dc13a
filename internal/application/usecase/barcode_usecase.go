package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
)

// Image archivo PNG generado con su nombre sugerido de descarga.
type Image struct {
	Filename string
	PNG      []byte
}

// BarcodeUseCase códigos de barras y QR de productos.
type BarcodeUseCase struct {
	repo     repository.ProductRepository
	renderer ports.BarcodeRenderer
	clock    ports.Clock
}

// NewBarcodeUseCase construye el caso de uso.
func NewBarcodeUseCase(repo repository.ProductRepository, renderer ports.BarcodeRenderer, clock ports.Clock) *BarcodeUseCase {
	return &BarcodeUseCase{repo: repo, renderer: renderer, clock: clock}
}

// Code128 PNG del barcode del producto (o de su SKU si no tiene uno asignado).
func (uc *BarcodeUseCase) Code128(ctx context.Context, id string) (*Image, error) {
	p, err := findProduct(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	png, err := uc.renderer.Code128PNG(p.BarcodeValue())
	if err != nil {
		return nil, fmt.Errorf("generar code128: %w", err)
	}
	return &Image{Filename: p.SKU + "-barcode.png", PNG: png}, nil
}

// qrPayload contenido JSON codificado en el QR.
type qrPayload struct {
	ID    string      `json:"id"`
	SKU   string      `json:"sku"`
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
}

// QRCode PNG con un QR que contiene {id, sku, name, price}.
func (uc *BarcodeUseCase) QRCode(ctx context.Context, id string) (*Image, error) {
	p, err := findProduct(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(qrPayload{
		ID:    p.ID,
		SKU:   p.SKU,
		Name:  p.Name,
		Price: json.Number(p.Price.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("serializar qr: %w", err)
	}
	png, err := uc.renderer.QRCodePNG(string(payload))
	if err != nil {
		return nil, fmt.Errorf("generar qr: %w", err)
	}
	return &Image{Filename: p.SKU + "-qr.png", PNG: png}, nil
}

// UpdateBarcode asigna un barcode explícito al producto.
func (uc *BarcodeUseCase) UpdateBarcode(ctx context.Context, id string, in dto.UpdateBarcodeRequest) (*dto.ProductResponse, error) {
	in.Barcode = strings.TrimSpace(in.Barcode)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if _, err := findProduct(ctx, uc.repo, id); err != nil {
		return nil, err
	}
	p, err := uc.repo.UpdateBarcode(ctx, id, in.Barcode, uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("actualizar barcode: %w", err)
	}
	out := dto.NewProductResponse(p)
	return &out, nil
}

// GenerateMissing asigna barcode = SKU a todos los productos sin barcode.
func (uc *BarcodeUseCase) GenerateMissing(ctx context.Context) (*dto.BulkBarcodeResponse, error) {
	n, err := uc.repo.AssignMissingBarcodes(ctx, uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("asignar barcodes: %w", err)
	}
	return &dto.BulkBarcodeResponse{Updated: n}, nil
}
