package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariantDTO variante de un producto.
type VariantDTO struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Value    string          `json:"value" validate:"required,max=100"`
	SKU      string          `json:"sku,omitempty" validate:"max=100"`
	Quantity int             `json:"quantity" validate:"gte=0,lte=2147483647"`
	Price    decimal.Decimal `json:"price"`
}

// CreateProductRequest entrada para crear un producto. Si SKU viene vacío se genera uno.
type CreateProductRequest struct {
	SKU          string          `json:"sku" validate:"max=100"`
	Name         string          `json:"name" validate:"required,max=200"`
	Category     string          `json:"category" validate:"required,max=100"`
	Supplier     string          `json:"supplier" validate:"required,max=200"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity" validate:"gte=0,lte=2147483647"`
	ReorderLevel int             `json:"reorder_level" validate:"gte=0,lte=2147483647"`
	Barcode      string          `json:"barcode" validate:"max=100"`
	Variants     []VariantDTO    `json:"variants" validate:"dive"`
}

// UpdateProductRequest actualización parcial; solo se escriben los campos presentes.
type UpdateProductRequest struct {
	SKU          *string          `json:"sku"`
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Supplier     *string          `json:"supplier"`
	Price        *decimal.Decimal `json:"price"`
	Quantity     *int             `json:"quantity"`
	ReorderLevel *int             `json:"reorder_level"`
	Barcode      *string          `json:"barcode"`
	Variants     *[]VariantDTO    `json:"variants"`
}

// ProductResponse salida de un producto. LowStock se calcula en cada lectura.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Supplier     string          `json:"supplier"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	LowStock     bool            `json:"low_stock"`
	Barcode      string          `json:"barcode,omitempty"`
	Variants     []VariantDTO    `json:"variants"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListQuery filtros, orden y paginación de GET /api/products.
type ProductListQuery struct {
	PageRequest
	Search   string `query:"search"`
	Category string `query:"category"`
	Supplier string `query:"supplier"`
	LowStock bool   `query:"low_stock"`
	Sort     string `query:"sort"` // campo:dirección, ej. "name:asc"
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	PageResponse
}

// BulkUpdateFields campos permitidos en la actualización masiva.
type BulkUpdateFields struct {
	Category     *string          `json:"category"`
	Supplier     *string          `json:"supplier"`
	Price        *decimal.Decimal `json:"price"`
	ReorderLevel *int             `json:"reorder_level" validate:"omitempty,gte=0,lte=2147483647"`
}

// BulkUpdateRequest body de POST /api/products/bulk-update.
type BulkUpdateRequest struct {
	ProductIDs []string         `json:"product_ids"`
	Updates    BulkUpdateFields `json:"updates"`
}

// BulkUpdateResponse resultado de la actualización masiva.
type BulkUpdateResponse struct {
	MatchedCount  int64 `json:"matched_count"`
	ModifiedCount int64 `json:"modified_count"`
}

// BulkDeleteRequest body de POST /api/products/bulk-delete.
type BulkDeleteRequest struct {
	ProductIDs []string `json:"product_ids"`
}

// BulkDeleteResponse resultado del borrado masivo.
type BulkDeleteResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// UpdateBarcodeRequest body de PUT /api/products/:id/barcode.
type UpdateBarcodeRequest struct {
	Barcode string `json:"barcode" validate:"required,max=100"`
}

// BulkBarcodeResponse resultado de asignar barcodes faltantes.
type BulkBarcodeResponse struct {
	Updated int64 `json:"updated"`
}

// ImportRowError fila rechazada en la importación CSV (filas numeradas desde 1).
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportSummary resultado de POST /api/products/import.
// Created + Updated + Skipped == número de filas de datos.
type ImportSummary struct {
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Skipped int              `json:"skipped"`
	Errors  []ImportRowError `json:"errors"`
}
