// Package barcode genera imágenes PNG de códigos Code128 y QR con boombuler/barcode.
package barcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"

	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/domain"
)

// Dimensiones de salida en píxeles.
const (
	code128MinWidth = 300
	code128Height   = 100
	qrSize          = 256
)

var _ ports.BarcodeRenderer = (*Renderer)(nil)

// Renderer implementa ports.BarcodeRenderer.
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Code128PNG codifica value en Code128. Caracteres fuera del juego -> domain.ErrInvalidInput.
func (r *Renderer) Code128PNG(value string) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("code128: valor vacío: %w", domain.ErrInvalidInput)
	}
	bc, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("code128 %q: %v: %w", value, err, domain.ErrInvalidInput)
	}
	width := max(code128MinWidth, bc.Bounds().Dx()*2)
	return encodePNG(bc, width, code128Height)
}

// QRCodePNG codifica payload en un QR con corrección de errores media.
func (r *Renderer) QRCodePNG(payload string) ([]byte, error) {
	bc, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	return encodePNG(bc, qrSize, qrSize)
}

func encodePNG(bc barcode.Barcode, width, height int) ([]byte, error) {
	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return nil, fmt.Errorf("escalar código: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("codificar png: %w", err)
	}
	return buf.Bytes(), nil
}
