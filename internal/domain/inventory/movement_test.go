package inventory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/domain/inventory"
)

func TestValidateMovement(t *testing.T) {
	assert.NoError(t, inventory.ValidateMovement("p1", entity.MovementTypeIN, 1))

	err := inventory.ValidateMovement("", "ADJUST", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Fields, 3)
}

func TestValidateMovement_CantidadFueraDeRango(t *testing.T) {
	err := inventory.ValidateMovement("p1", entity.MovementTypeIN, inventory.MaxQuantity+1)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "quantity", ve.Fields[0].Field)

	assert.NoError(t, inventory.ValidateMovement("p1", entity.MovementTypeOUT, inventory.MaxQuantity))
}

func TestValidQuantity(t *testing.T) {
	assert.True(t, inventory.ValidQuantity(0))
	assert.True(t, inventory.ValidQuantity(inventory.MaxQuantity))
	assert.False(t, inventory.ValidQuantity(-1))
	assert.False(t, inventory.ValidQuantity(3_000_000_000))
}

func TestValidPrice(t *testing.T) {
	assert.True(t, inventory.ValidPrice(decimal.Zero))
	assert.True(t, inventory.ValidPrice(decimal.RequireFromString("9999999999.99")))
	assert.False(t, inventory.ValidPrice(decimal.RequireFromString("9999999999.995")), "redondea a 10^10")
	assert.False(t, inventory.ValidPrice(decimal.RequireFromString("10000000000")))
	assert.False(t, inventory.ValidPrice(decimal.RequireFromString("-0.01")))
}

func TestFormatSKU(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	assert.Equal(t, "SKU-20240309140507-0042", inventory.FormatSKU(ts, 42))
	assert.Regexp(t, `^SKU-\d{14}-\d{4}$`, inventory.FormatSKU(time.Now(), 1234))
}
