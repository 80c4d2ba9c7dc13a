package entity

import "time"

// Tipos de movimiento del ledger.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// ValidMovementType indica si t es IN u OUT.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}

// StockMovement entrada inmutable del ledger de inventario.
// Quantity siempre es positiva; la dirección la da Type.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // IN, OUT
	Quantity  int
	CreatedBy string // UserID del actor
	CreatedAt time.Time
}

// StockMovementView movimiento con producto y actor resueltos (solo lectura).
// Los campos quedan vacíos si el producto o el usuario ya no existen.
type StockMovementView struct {
	StockMovement
	ProductName     string
	ProductSKU      string
	ProductCategory string
	ActorName       string
	ActorEmail      string
}
