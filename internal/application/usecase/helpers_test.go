package usecase_test

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
)

const (
	productID = "11111111-1111-1111-1111-111111111111"
	otherID   = "33333333-3333-3333-3333-333333333333"
	userID    = "22222222-2222-2222-2222-222222222222"
)

var fixedNow = time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (s *seqIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", s.n)
}

// stubCodec devuelve registros fijos en Decode y escribe los SKU en Encode.
type stubCodec struct {
	records []ports.ProductRecord
	err     error
	encoded []*entity.Product
}

func (s *stubCodec) Decode(io.Reader) ([]ports.ProductRecord, error) {
	return s.records, s.err
}

func (s *stubCodec) Encode(w io.Writer, products []*entity.Product) error {
	s.encoded = products
	for _, p := range products {
		if _, err := fmt.Fprintln(w, p.SKU); err != nil {
			return err
		}
	}
	return nil
}

type stubSheets struct {
	products  []*entity.Product
	movements []*entity.StockMovementView
}

func (s *stubSheets) ProductsWorkbook(products []*entity.Product) ([]byte, error) {
	s.products = products
	return []byte("xlsx-products"), nil
}

func (s *stubSheets) StockMovementsWorkbook(movements []*entity.StockMovementView) ([]byte, error) {
	s.movements = movements
	return []byte("xlsx-movements"), nil
}

type stubPDF struct {
	report ports.InventoryReport
}

func (s *stubPDF) InventoryReport(_ context.Context, report ports.InventoryReport) ([]byte, error) {
	s.report = report
	return []byte("%PDF-stub"), nil
}

type stubBarcodes struct {
	code128 string
	qr      string
}

func (s *stubBarcodes) Code128PNG(value string) ([]byte, error) {
	s.code128 = value
	return []byte("png-code128"), nil
}

func (s *stubBarcodes) QRCodePNG(payload string) ([]byte, error) {
	s.qr = payload
	return []byte("png-qr"), nil
}
