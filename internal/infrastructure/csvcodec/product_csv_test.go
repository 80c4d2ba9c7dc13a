package csvcodec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/infrastructure/csvcodec"
)

func TestProductCSV_Decode(t *testing.T) {
	in := "\ufeffname,sku,category,supplier,price,quantity,reorder_level\n" +
		"Widget,W-1,Tools,Acme,9.99,5,2\n" +
		"\n" +
		"\"Gadget, large\",,Tools,Acme,,,\n" +
		"Short,S-1,Misc\n"

	records, err := csvcodec.NewProductCSV().Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, ports.ProductRecord{
		Name: "Widget", SKU: "W-1", Category: "Tools", Supplier: "Acme",
		Price: "9.99", Quantity: "5", ReorderLevel: "2",
	}, records[0])
	assert.Equal(t, "Gadget, large", records[1].Name)
	assert.Empty(t, records[1].SKU)
	assert.Equal(t, "Misc", records[2].Category)
	assert.Empty(t, records[2].Supplier)
}

func TestProductCSV_Decode_EncabezadoInvalido(t *testing.T) {
	_, err := csvcodec.NewProductCSV().Decode(strings.NewReader("foo,bar\n1,2\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = csvcodec.NewProductCSV().Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCSV_EncodeDecode(t *testing.T) {
	products := []*entity.Product{
		{Name: "Widget", SKU: "W-1", Category: "Tools", Supplier: "Acme, Inc.", Price: decimal.RequireFromString("9.9"), Quantity: 5, ReorderLevel: 2},
	}
	var buf bytes.Buffer
	require.NoError(t, csvcodec.NewProductCSV().Encode(&buf, products))
	assert.True(t, strings.HasPrefix(buf.String(), "name,sku,category,supplier,price,quantity,reorderLevel\n"))

	records, err := csvcodec.NewProductCSV().Decode(&buf)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme, Inc.", records[0].Supplier)
	assert.Equal(t, "9.90", records[0].Price)
	assert.Equal(t, "2", records[0].ReorderLevel)
}
