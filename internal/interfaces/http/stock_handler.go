package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/application/inventory"
)

// StockHandler movimientos de inventario y consulta del ledger.
type StockHandler struct {
	uc *inventory.MovementUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.MovementUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// In godoc
// @Summary      Entrada de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMovementRequest  true  "product_id, quantity"
// @Success      200   {object}  dto.StockMovementResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/in [post]
func (h *StockHandler) In(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.StockIn(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Out godoc
// @Summary      Salida de stock
// @Description  Se rechaza con 409 INSUFFICIENT_STOCK si la cantidad supera las existencias.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMovementRequest  true  "product_id, quantity"
// @Success      200   {object}  dto.StockMovementResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/out [post]
func (h *StockHandler) Out(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.StockOut(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Logs godoc
// @Summary      Ledger de movimientos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "ID del producto"
// @Param        type        query  string  false  "IN | OUT"
// @Param        updated_by  query  string  false  "ID del usuario"
// @Param        page        query  int     false  "Página"  default(1)
// @Param        limit       query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.StockMovementListResponse
// @Router       /api/stock/logs [get]
func (h *StockHandler) Logs(c *fiber.Ctx) error {
	out, err := h.uc.ListMovements(c.UserContext(), dto.StockMovementListQuery{
		PageRequest: pageQuery(c),
		ProductID:   c.Query("product_id"),
		Type:        c.Query("type"),
		UpdatedBy:   c.Query("updated_by"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
