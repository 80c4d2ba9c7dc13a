package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
)

func TestContainsPattern_EscapaComodines(t *testing.T) {
	assert.Equal(t, "%widget%", containsPattern("widget"))
	assert.Equal(t, `%50\%\_off%`, containsPattern("50%_off"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}

func TestProductWhere(t *testing.T) {
	where, args := productWhere(repository.ProductFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = productWhere(repository.ProductFilter{
		Search:   "wid",
		Category: "Tools",
		Supplier: "Acme",
		LowStock: true,
	})
	assert.Equal(t,
		" WHERE (name ILIKE $1 OR sku ILIKE $1 OR category ILIKE $1 OR supplier ILIKE $1)"+
			" AND category = $2 AND supplier = $3 AND quantity <= reorder_level",
		where)
	assert.Equal(t, []any{"%wid%", "Tools", "Acme"}, args)
}

func TestProductOrderBy(t *testing.T) {
	assert.Equal(t, " ORDER BY name ASC, id ASC", productOrderBy(repository.ProductSort{Field: "name"}))
	assert.Equal(t, " ORDER BY price DESC, id DESC", productOrderBy(repository.ProductSort{Field: "price", Desc: true}))
	assert.Equal(t, " ORDER BY created_at DESC, id DESC",
		productOrderBy(repository.ProductSort{Field: "1; DROP TABLE products", Desc: true}))
}

func TestMarshalVariants(t *testing.T) {
	b, err := marshalVariants(nil)
	assert.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	b, err = marshalVariants([]entity.Variant{{Name: "talla", Value: "M", Quantity: 2}})
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"name":"talla","value":"M","quantity":2,"price":"0"}]`, string(b))
}

func TestPgErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("crear producto: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, isUniqueViolation(wrapped))
	assert.Equal(t, "23505", pgErrorCode(wrapped))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))

	assert.Empty(t, pgErrorCode(errors.New("otra cosa")))
	assert.False(t, isUniqueViolation(nil))
}

func TestAdjustQuantityError(t *testing.T) {
	overflow := adjustQuantityError(&pgconn.PgError{Code: "22003", Message: "integer out of range"})
	assert.ErrorIs(t, overflow, domain.ErrInvalidInput)
	var ve *domain.ValidationError
	require.True(t, errors.As(overflow, &ve))
	assert.Equal(t, "quantity", ve.Fields[0].Field)

	other := adjustQuantityError(&pgconn.PgError{Code: "57014"})
	assert.NotErrorIs(t, other, domain.ErrInvalidInput)
	assert.Equal(t, "57014", pgErrorCode(other))
}
