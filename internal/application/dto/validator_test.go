package dto_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/domain"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "se esperaba *domain.ValidationError, got %T", err)
	names := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidate_CreateProduct_CamposRequeridos(t *testing.T) {
	err := dto.Validate(dto.CreateProductRequest{Quantity: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	names := fieldNames(t, err)
	assert.ElementsMatch(t, []string{"name", "category", "supplier", "quantity"}, names)
}

func TestValidate_CreateProduct_Valido(t *testing.T) {
	err := dto.Validate(dto.CreateProductRequest{
		Name: "Teclado", Category: "Periféricos", Supplier: "Acme",
		Variants: []dto.VariantDTO{{Name: "color", Value: "negro"}},
	})
	assert.NoError(t, err)
}

func TestValidate_Variantes_UsaRutaDelCampo(t *testing.T) {
	err := dto.Validate(dto.CreateProductRequest{
		Name: "Teclado", Category: "Periféricos", Supplier: "Acme",
		Variants: []dto.VariantDTO{{Name: "color"}},
	})
	require.Error(t, err)
	assert.Equal(t, []string{"variants[0].value"}, fieldNames(t, err))
}

func TestValidate_CreateUser_RolInvalido(t *testing.T) {
	err := dto.Validate(dto.CreateUserRequest{
		Name: "Ana", Email: "ana@example.com", Password: "secreto1", Role: "OWNER",
	})
	require.Error(t, err)
	assert.Equal(t, []string{"role"}, fieldNames(t, err))
}

func TestValidate_UpdateUser_PunterosNilNoValidan(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.UpdateUserRequest{}))

	bad := "no-es-email"
	err := dto.Validate(dto.UpdateUserRequest{Email: &bad})
	require.Error(t, err)
	assert.Equal(t, []string{"email"}, fieldNames(t, err))
}

func TestValidate_StockMovement_CantidadPositiva(t *testing.T) {
	err := dto.Validate(dto.StockMovementRequest{ProductID: "p1", Quantity: 0})
	require.Error(t, err)
	assert.Equal(t, []string{"quantity"}, fieldNames(t, err))
}

func TestPageRequest_Normalize(t *testing.T) {
	cases := []struct {
		in, want dto.PageRequest
	}{
		{dto.PageRequest{Page: 0, Limit: 0}, dto.PageRequest{Page: 1, Limit: 10}},
		{dto.PageRequest{Page: -3, Limit: 500}, dto.PageRequest{Page: 1, Limit: 100}},
		{dto.PageRequest{Page: 3, Limit: 25}, dto.PageRequest{Page: 3, Limit: 25}},
	}
	for _, tc := range cases {
		p := tc.in
		p.Normalize()
		assert.Equal(t, tc.want, p)
	}

	p := dto.PageRequest{Page: 3, Limit: 25}
	assert.Equal(t, 50, p.Offset())
}

func TestValidate_CantidadesFueraDeRango(t *testing.T) {
	err := dto.Validate(dto.StockMovementRequest{ProductID: "p1", Quantity: 3_000_000_000})
	assert.Equal(t, []string{"quantity"}, fieldNames(t, err))

	err = dto.Validate(dto.CreateProductRequest{
		Name: "Teclado", Category: "Periféricos", Supplier: "Acme",
		Quantity: 3_000_000_000, ReorderLevel: 3_000_000_000,
		Variants: []dto.VariantDTO{{Name: "color", Value: "negro", Quantity: 3_000_000_000}},
	})
	assert.ElementsMatch(t, []string{"quantity", "reorder_level", "variants[0].quantity"}, fieldNames(t, err))

	assert.NoError(t, dto.Validate(dto.StockMovementRequest{ProductID: "p1", Quantity: 2147483647}))
}

func TestValidate_PasswordMaximo72(t *testing.T) {
	long := strings.Repeat("x", 73)
	err := dto.Validate(dto.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Password: long, Role: "STAFF"})
	assert.Equal(t, []string{"password"}, fieldNames(t, err))

	err = dto.Validate(dto.UpdateUserRequest{Password: &long})
	assert.Equal(t, []string{"password"}, fieldNames(t, err))
}
