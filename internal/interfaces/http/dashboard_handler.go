package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stockwise-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del inventario
// @Description  Totales de productos y movimientos, tendencia diaria de `days` días (UTC) y últimos 5 movimientos.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        days      query  int     false  "Ventana de la tendencia (1-365)"  default(7)
// @Param        category  query  string  false  "Categoría"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), c.QueryInt("days", appanalytics.DefaultTrendDays), c.Query("category"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
