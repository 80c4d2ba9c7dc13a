package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/application/usecase"
)

// BarcodeHandler imágenes de códigos y asignación de barcodes.
type BarcodeHandler struct {
	uc *usecase.BarcodeUseCase
}

// NewBarcodeHandler construye el handler.
func NewBarcodeHandler(uc *usecase.BarcodeUseCase) *BarcodeHandler {
	return &BarcodeHandler{uc: uc}
}

// Barcode godoc
// @Summary      PNG Code128 del barcode (o del SKU)
// @Tags         barcodes
// @Security     Bearer
// @Produce      png
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/barcode [get]
func (h *BarcodeHandler) Barcode(c *fiber.Ctx) error {
	img, err := h.uc.Code128(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPNG(c, img)
}

// QRCode godoc
// @Summary      PNG QR con {id, sku, name, price}
// @Tags         barcodes
// @Security     Bearer
// @Produce      png
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/qrcode [get]
func (h *BarcodeHandler) QRCode(c *fiber.Ctx) error {
	img, err := h.uc.QRCode(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPNG(c, img)
}

// UpdateBarcode godoc
// @Summary      Asignar barcode
// @Tags         barcodes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateBarcodeRequest  true  "barcode"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/barcode [put]
func (h *BarcodeHandler) UpdateBarcode(c *fiber.Ctx) error {
	var in dto.UpdateBarcodeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateBarcode(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GenerateMissing godoc
// @Summary      Usar el SKU como barcode donde falte
// @Tags         barcodes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BulkBarcodeResponse
// @Router       /api/products/bulk-generate-barcodes [post]
func (h *BarcodeHandler) GenerateMissing(c *fiber.Ctx) error {
	out, err := h.uc.GenerateMissing(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func sendPNG(c *fiber.Ctx, img *usecase.Image) error {
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, img.Filename))
	return c.Send(img.PNG)
}
