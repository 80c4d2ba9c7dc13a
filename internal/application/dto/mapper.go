package dto

import "github.com/jhoicas/stockwise-api/internal/domain/entity"

// NewProductResponse convierte la entidad en su representación HTTP.
func NewProductResponse(p *entity.Product) ProductResponse {
	variants := make([]VariantDTO, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, VariantDTO(v))
	}
	return ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Category:     p.Category,
		Supplier:     p.Supplier,
		Price:        p.Price,
		Quantity:     p.Quantity,
		ReorderLevel: p.ReorderLevel,
		LowStock:     p.LowStock(),
		Barcode:      p.Barcode,
		Variants:     variants,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewProductResponses convierte una lista (nunca devuelve nil).
func NewProductResponses(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewProductResponse(p))
	}
	return out
}

// NewStockMovementResponse movimiento sin producto/actor resueltos.
func NewStockMovementResponse(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}

// NewStockMovementViewResponse movimiento con producto y actor resueltos.
// Si el producto o el usuario ya no existen, el bloque correspondiente se omite.
func NewStockMovementViewResponse(v *entity.StockMovementView) StockMovementResponse {
	out := NewStockMovementResponse(&v.StockMovement)
	if v.ProductSKU != "" || v.ProductName != "" {
		out.Product = &MovementProductDTO{
			ID:       v.ProductID,
			Name:     v.ProductName,
			SKU:      v.ProductSKU,
			Category: v.ProductCategory,
		}
	}
	if v.ActorEmail != "" || v.ActorName != "" {
		out.User = &MovementActorDTO{ID: v.CreatedBy, Name: v.ActorName, Email: v.ActorEmail}
	}
	return out
}

// NewStockMovementViewResponses convierte una lista (nunca devuelve nil).
func NewStockMovementViewResponses(list []*entity.StockMovementView) []StockMovementResponse {
	out := make([]StockMovementResponse, 0, len(list))
	for _, v := range list {
		out = append(out, NewStockMovementViewResponse(v))
	}
	return out
}

// NewUserResponse usuario sin password.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToVariants convierte las variantes de entrada a entidades.
func ToVariants(in []VariantDTO) []entity.Variant {
	out := make([]entity.Variant, 0, len(in))
	for _, v := range in {
		out = append(out, entity.Variant(v))
	}
	return out
}
