package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
)

// pageQuery lee page y limit; la normalización la hace el caso de uso.
func pageQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", dto.DefaultPageLimit),
	}
}

// productListQuery filtros comunes de listado y exportación de productos.
func productListQuery(c *fiber.Ctx) dto.ProductListQuery {
	return dto.ProductListQuery{
		PageRequest: pageQuery(c),
		Search:      c.Query("search"),
		Category:    c.Query("category"),
		Supplier:    c.Query("supplier"),
		LowStock:    strings.EqualFold(c.Query("low_stock"), "true") || c.Query("low_stock") == "1",
		Sort:        c.Query("sort"),
	}
}
