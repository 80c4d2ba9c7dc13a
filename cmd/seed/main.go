// seed carga datos iniciales en la base de datos.
//
// Uso: go run ./cmd/seed [admin|sample]
//
//	admin   crea o actualiza el administrador definido en ADMIN_NAME, ADMIN_EMAIL y ADMIN_PASSWORD.
//	sample  además crea un usuario STAFF, 5 productos y una semana de movimientos.
//
// Sin argumento se ejecuta admin.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/application/inventory"
	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/application/usecase"
	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockwise-api/pkg/config"
	"github.com/jhoicas/stockwise-api/pkg/logger"
)

const sampleDays = 7

// Credenciales del usuario STAFF de ejemplo.
const (
	sampleStaffName     = "Staff User"
	sampleStaffEmail    = "staff@stockwise.local"
	sampleStaffPassword = "staff12345"
)

type sampleProduct struct {
	sku, name, category, supplier, price string
	quantity, reorderLevel             int
}

var sampleProducts = []sampleProduct{
	{"SKU-LAP-001", "Laptop 14\"", "Electrónica", "TechSupply", "899.99", 12, 5},
	{"SKU-MOU-002", "Mouse inalámbrico", "Accesorios", "TechSupply", "19.90", 40, 15},
	{"SKU-CHR-003", "Silla ergonómica", "Mobiliario", "OfficePro", "249.00", 6, 8},
	{"SKU-PAP-004", "Resma papel A4", "Papelería", "PapelNorte", "4.75", 120, 50},
	{"SKU-TON-005", "Tóner negro", "Consumibles", "PrintMax", "58.40", 3, 10},
}

// seedClock reloj ajustable para fechar movimientos en días anteriores.
type seedClock struct{ now time.Time }

func (c *seedClock) Now() time.Time { return c.now }

func main() {
	mode := "admin"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}
	if mode != "admin" && mode != "sample" {
		fmt.Fprintf(os.Stderr, "uso: seed [admin|sample]\n")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	clock := &seedClock{now: time.Now().UTC()}
	ids := ports.UUIDGenerator{}
	userUC := usecase.NewUserUseCase(postgres.NewUserRepository(pool), clock, ids)

	admin, err := seedAdmin(ctx, userUC, cfg.Admin)
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}
	log.Info().Str("email", admin.Email).Msg("administrador listo")
	if mode == "admin" {
		return
	}

	staff, created, err := userUC.Ensure(ctx, dto.CreateUserRequest{
		Name:     sampleStaffName,
		Email:    sampleStaffEmail,
		Password: sampleStaffPassword,
		Role:     entity.RoleStaff,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed staff")
	}
	log.Info().Str("email", staff.Email).Bool("created", created).Msg("usuario staff listo")

	productRepo := postgres.NewProductRepository(pool)
	productUC := usecase.NewProductUseCase(productRepo, nil, clock, ids, log)
	movementUC := inventory.NewMovementUseCase(postgres.NewTxRunner(pool), postgres.NewStockMovementRepository(pool), clock, ids)

	today := clock.now
	for i, sp := range sampleProducts {
		clock.now = today.AddDate(0, 0, -sampleDays)
		p, err := productUC.Create(ctx, dto.CreateProductRequest{
			SKU:          sp.sku,
			Name:         sp.name,
			Category:     sp.category,
			Supplier:     sp.supplier,
			Price:        decimal.RequireFromString(sp.price),
			Quantity:     sp.quantity,
			ReorderLevel: sp.reorderLevel,
		})
		if errors.Is(err, domain.ErrDuplicate) {
			log.Info().Str("sku", sp.sku).Msg("producto ya existe, se omite")
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("sku", sp.sku).Msg("seed producto")
		}
		if err := seedMovements(ctx, movementUC, clock, today, p.ID, []string{admin.ID, staff.ID}, i); err != nil {
			log.Fatal().Err(err).Str("sku", sp.sku).Msg("seed movimientos")
		}
		log.Info().Str("sku", sp.sku).Msg("producto de ejemplo creado")
	}
}

func seedAdmin(ctx context.Context, uc *usecase.UserUseCase, cfg config.AdminConfig) (*dto.UserResponse, error) {
	if cfg.Email == "" || cfg.Password == "" {
		return nil, errors.New("ADMIN_EMAIL y ADMIN_PASSWORD son obligatorios")
	}
	out, _, err := uc.Ensure(ctx, dto.CreateUserRequest{
		Name:     cfg.Name,
		Email:    cfg.Email,
		Password: cfg.Password,
		Role:     entity.RoleAdmin,
	})
	return out, err
}

// seedMovements registra una entrada y una salida por día durante la última semana.
// La salida nunca supera a la entrada del mismo día, así que no hay stock insuficiente.
func seedMovements(ctx context.Context, uc *inventory.MovementUseCase, clock *seedClock, today time.Time, productID string, actors []string, seed int) error {
	for d := sampleDays - 1; d >= 0; d-- {
		clock.now = today.AddDate(0, 0, -d).Add(-time.Duration(seed+1) * time.Hour)
		actor := actors[d%len(actors)]
		in := 2 + (seed+d)%5
		if _, err := uc.StockIn(ctx, actor, dto.StockMovementRequest{ProductID: productID, Quantity: in}); err != nil {
			return fmt.Errorf("entrada día -%d: %w", d, err)
		}
		clock.now = clock.now.Add(30 * time.Minute)
		out := 1 + (seed*d)%in
		if _, err := uc.StockOut(ctx, actor, dto.StockMovementRequest{ProductID: productID, Quantity: out}); err != nil {
			return fmt.Errorf("salida día -%d: %w", d, err)
		}
	}
	return nil
}
