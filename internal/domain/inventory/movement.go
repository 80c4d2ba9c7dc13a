// Package inventory contiene las reglas puras del ledger de existencias (servicio de dominio).
package inventory

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
)

// MaxQuantity tope de cantidades, existencias y niveles de reorden (columnas INTEGER).
const MaxQuantity = math.MaxInt32

// MaxPrice cota exclusiva de precios ya redondeados a 2 decimales (NUMERIC(12,2)).
var MaxPrice = decimal.New(1, 10)

// ValidQuantity indica si n es una cantidad almacenable.
func ValidQuantity(n int) bool {
	return n >= 0 && n <= MaxQuantity
}

// ValidPrice indica si d, redondeado a centavos, es un precio almacenable.
func ValidPrice(d decimal.Decimal) bool {
	return !d.IsNegative() && d.Round(2).LessThan(MaxPrice)
}

// ValidateMovement comprueba tipo y cantidad de un movimiento.
func ValidateMovement(productID, movementType string, quantity int) error {
	ve := &domain.ValidationError{}
	if productID == "" {
		ve.Add("product_id", "es requerido")
	}
	if !entity.ValidMovementType(movementType) {
		ve.Add("type", "debe ser IN u OUT")
	}
	switch {
	case quantity <= 0:
		ve.Add("quantity", "debe ser un entero mayor a 0")
	case quantity > MaxQuantity:
		ve.Add("quantity", fmt.Sprintf("debe ser como máximo %d", MaxQuantity))
	}
	return ve.OrNil()
}

// Delta cantidad con signo que el movimiento aplica sobre las existencias.
// IN suma, OUT resta.
func Delta(movementType string, quantity int) int {
	if movementType == entity.MovementTypeOUT {
		return -quantity
	}
	return quantity
}

// FormatSKU arma un SKU con el formato SKU-YYYYMMDDHHMMSS-NNNN (hora UTC).
// suffix debe estar en [1000, 9999].
func FormatSKU(t time.Time, suffix int) string {
	return fmt.Sprintf("SKU-%s-%04d", t.UTC().Format("20060102150405"), suffix)
}
