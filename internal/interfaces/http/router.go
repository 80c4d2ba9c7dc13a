package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockwise-api/internal/application/analytics"
	"github.com/jhoicas/stockwise-api/internal/application/auth"
	"github.com/jhoicas/stockwise-api/internal/application/inventory"
	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/application/usecase"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	ExportUC    *usecase.ExportUseCase
	BarcodeUC   *usecase.BarcodeUseCase
	MovementUC  *inventory.MovementUseCase
	DashboardUC *analytics.DashboardUseCase
	UserUC      *usecase.UserUseCase
	Clock       ports.Clock
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin)
	staffOrAdmin := RequireRole(entity.RoleAdmin, entity.RoleStaff)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	protected.Get("/auth/me", authHandler.Me)

	// Products: las rutas estáticas van antes de /:id
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	exportHandler := NewExportHandler(deps.ExportUC, deps.Clock)
	barcodeHandler := NewBarcodeHandler(deps.BarcodeUC)

	products.Get("/export", adminOnly, exportHandler.CSV)
	products.Get("/export/excel", adminOnly, exportHandler.Excel)
	products.Get("/export/pdf", adminOnly, exportHandler.PDF)
	products.Get("/export/stock-report", adminOnly, exportHandler.StockReport)
	products.Post("/import", adminOnly, productHandler.Import)
	products.Post("/bulk-update", adminOnly, productHandler.BulkUpdate)
	products.Post("/bulk-delete", adminOnly, productHandler.BulkDelete)
	products.Post("/bulk-generate-barcodes", adminOnly, barcodeHandler.GenerateMissing)

	products.Get("/", productHandler.List)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Get("/:id/barcode", barcodeHandler.Barcode)
	products.Put("/:id/barcode", adminOnly, barcodeHandler.UpdateBarcode)
	products.Get("/:id/qrcode", barcodeHandler.QRCode)

	// Stock
	stock := protected.Group("/stock", staffOrAdmin)
	stockHandler := NewStockHandler(deps.MovementUC)
	stock.Post("/in", stockHandler.In)
	stock.Post("/out", stockHandler.Out)
	stock.Get("/logs", stockHandler.Logs)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", staffOrAdmin, dashboardHandler.GetSummary)

	// Users
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
