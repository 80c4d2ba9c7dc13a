package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/stockwise-api/docs"
	appanalytics "github.com/jhoicas/stockwise-api/internal/application/analytics"
	"github.com/jhoicas/stockwise-api/internal/application/auth"
	"github.com/jhoicas/stockwise-api/internal/application/inventory"
	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/application/usecase"
	infrabarcode "github.com/jhoicas/stockwise-api/internal/infrastructure/barcode"
	"github.com/jhoicas/stockwise-api/internal/infrastructure/csvcodec"
	"github.com/jhoicas/stockwise-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/stockwise-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockwise-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockwise-api/internal/interfaces/http"
	"github.com/jhoicas/stockwise-api/pkg/config"
	"github.com/jhoicas/stockwise-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title                       StockWise API
// @version                     1.0
// @description                 API de inventario: productos, movimientos de stock, dashboard y usuarios.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if len(applied) > 0 {
		log.Info().Strs("migrations", applied).Msg("esquema actualizado")
	}

	clock := ports.SystemClock{}
	ids := ports.UUIDGenerator{}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productCSV := csvcodec.NewProductCSV()
	sheets := excel.NewRenderer()
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	barcodes := infrabarcode.NewRenderer()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, productCSV, clock, ids, log.Component("products"))
	exportUC := usecase.NewExportUseCase(productRepo, movementRepo, productCSV, sheets, pdfGenerator, clock)
	barcodeUC := usecase.NewBarcodeUseCase(productRepo, barcodes, clock)
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo, clock, ids)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo, clock)
	userUC := usecase.NewUserUseCase(userRepo, clock, ids)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.ClientOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "StockWise API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		ExportUC:    exportUC,
		BarcodeUC:   barcodeUC,
		MovementUC:  movementUC,
		DashboardUC: dashboardUC,
		UserUC:      userUC,
		Clock:       clock,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
