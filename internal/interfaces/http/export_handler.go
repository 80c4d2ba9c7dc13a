package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/application/usecase"
)

// Content types de las descargas.
const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// ExportHandler descargas del catálogo y del ledger.
type ExportHandler struct {
	uc    *usecase.ExportUseCase
	clock ports.Clock
}

// NewExportHandler construye el handler; clock fecha los nombres de archivo.
func NewExportHandler(uc *usecase.ExportUseCase, clock ports.Clock) *ExportHandler {
	return &ExportHandler{uc: uc, clock: clock}
}

// CSV godoc
// @Summary      Exportar productos a CSV
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        search     query  string  false  "Texto"
// @Param        category   query  string  false  "Categoría"
// @Param        supplier   query  string  false  "Proveedor"
// @Param        low_stock  query  bool    false  "Solo stock bajo"
// @Param        sort       query  string  false  "campo:dirección"
// @Success      200  {file}  file
// @Router       /api/products/export [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	out, err := h.uc.ProductsCSV(c.UserContext(), productListQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return h.send(c, out, contentTypeCSV, "products", "csv")
}

// Excel godoc
// @Summary      Exportar productos a Excel
// @Tags         export
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/products/export/excel [get]
func (h *ExportHandler) Excel(c *fiber.Ctx) error {
	out, err := h.uc.ProductsExcel(c.UserContext(), productListQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return h.send(c, out, contentTypeXLSX, "products", "xlsx")
}

// PDF godoc
// @Summary      Reporte de inventario en PDF
// @Tags         export
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/products/export/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	out, err := h.uc.ProductsPDF(c.UserContext(), productListQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return h.send(c, out, contentTypePDF, "inventory-report", "pdf")
}

// StockReport godoc
// @Summary      Movimientos de los últimos N días en Excel
// @Tags         export
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        days  query  int  false  "Ventana en días (1-365)"  default(30)
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/export/stock-report [get]
func (h *ExportHandler) StockReport(c *fiber.Ctx) error {
	out, err := h.uc.StockReport(c.UserContext(), c.QueryInt("days", usecase.DefaultStockReportDays))
	if err != nil {
		return writeError(c, err)
	}
	return h.send(c, out, contentTypeXLSX, "stock-report", "xlsx")
}

func (h *ExportHandler) send(c *fiber.Ctx, body []byte, contentType, name, ext string) error {
	filename := fmt.Sprintf("%s-%s.%s", name, h.clock.Now().Format("2006-01-02"), ext)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}
