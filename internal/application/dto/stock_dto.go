package dto

import "time"

// StockMovementRequest body de POST /api/stock/in y /api/stock/out.
type StockMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0,lte=2147483647"`
}

// MovementProductDTO producto resuelto de un movimiento.
type MovementProductDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Category string `json:"category,omitempty"`
}

// MovementActorDTO usuario que registró el movimiento.
type MovementActorDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StockMovementResponse entrada del ledger.
type StockMovementResponse struct {
	ID        string              `json:"id"`
	ProductID string              `json:"product_id"`
	Type      string              `json:"type"`
	Quantity  int                 `json:"quantity"`
	CreatedBy string              `json:"created_by"`
	CreatedAt time.Time           `json:"created_at"`
	Product   *MovementProductDTO `json:"product,omitempty"`
	User      *MovementActorDTO   `json:"user,omitempty"`
}

// StockMovementResult respuesta de un movimiento aplicado: producto actualizado + entrada del ledger.
type StockMovementResult struct {
	Product  ProductResponse       `json:"product"`
	Movement StockMovementResponse `json:"movement"`
}

// StockMovementListQuery filtros de GET /api/stock/logs.
type StockMovementListQuery struct {
	PageRequest
	ProductID string `query:"product_id"`
	Type      string `query:"type"`
	UpdatedBy string `query:"updated_by"`
}

// StockMovementListResponse lista paginada del ledger.
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	PageResponse
}
