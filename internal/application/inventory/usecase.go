package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stockwise-api/internal/domain/inventory"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
)

// MovementInput entrada para aplicar un movimiento de inventario.
type MovementInput struct {
	ProductID string
	Type      string // IN, OUT
	Quantity  int
	UserID    string // actor
}

// MovementResult producto con las existencias resultantes y la entrada del ledger creada.
type MovementResult struct {
	Product  *entity.Product
	Movement *entity.StockMovement
}

// MovementUseCase aplica movimientos IN/OUT y consulta el ledger.
// Es el único punto que modifica existencias y ledger a la vez.
type MovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
	clock        ports.Clock
	ids          ports.IDGenerator
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	movementRepo repository.StockMovementRepository,
	clock ports.Clock,
	ids ports.IDGenerator,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		clock:        clock,
		ids:          ids,
	}
}

// ApplyMovement valida la entrada y, en una sola transacción, ajusta las existencias con una
// actualización condicional y agrega la entrada al ledger.
// Errores: ErrInvalidInput (ValidationError), ErrNotFound, ErrInsufficientStock.
// Si algo falla no queda ni ajuste ni entrada.
func (uc *MovementUseCase) ApplyMovement(ctx context.Context, in MovementInput) (*MovementResult, error) {
	if err := domaininv.ValidateMovement(in.ProductID, in.Type, in.Quantity); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(in.ProductID); err != nil {
		return nil, fmt.Errorf("producto %q: %w", in.ProductID, domain.ErrNotFound)
	}

	now := uc.clock.Now().UTC()
	var result *MovementResult

	// Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.AdjustQuantity(ctx, in.ProductID, domaininv.Delta(in.Type, in.Quantity), now)
		if err != nil {
			return err
		}
		movement := &entity.StockMovement{
			ID:        uc.ids.NewID(),
			ProductID: product.ID,
			Type:      in.Type,
			Quantity:  in.Quantity,
			CreatedBy: in.UserID,
			CreatedAt: now,
		}
		if err := movementRepo.Create(ctx, movement); err != nil {
			return fmt.Errorf("registrar movimiento: %w", err)
		}
		result = &MovementResult{Product: product, Movement: movement}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// StockIn registra una entrada (POST /api/stock/in).
func (uc *MovementUseCase) StockIn(ctx context.Context, userID string, in dto.StockMovementRequest) (*dto.StockMovementResult, error) {
	return uc.apply(ctx, userID, entity.MovementTypeIN, in)
}

// StockOut registra una salida (POST /api/stock/out).
func (uc *MovementUseCase) StockOut(ctx context.Context, userID string, in dto.StockMovementRequest) (*dto.StockMovementResult, error) {
	return uc.apply(ctx, userID, entity.MovementTypeOUT, in)
}

func (uc *MovementUseCase) apply(ctx context.Context, userID, movementType string, in dto.StockMovementRequest) (*dto.StockMovementResult, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	res, err := uc.ApplyMovement(ctx, MovementInput{
		ProductID: in.ProductID,
		Type:      movementType,
		Quantity:  in.Quantity,
		UserID:    userID,
	})
	if err != nil {
		return nil, err
	}
	return &dto.StockMovementResult{
		Product:  dto.NewProductResponse(res.Product),
		Movement: dto.NewStockMovementResponse(res.Movement),
	}, nil
}

// ListMovements lista el ledger, más reciente primero, con producto y actor resueltos.
func (uc *MovementUseCase) ListMovements(ctx context.Context, q dto.StockMovementListQuery) (*dto.StockMovementListResponse, error) {
	q.Normalize()
	if q.Type != "" && !entity.ValidMovementType(q.Type) {
		return nil, domain.NewValidationError("type", "debe ser IN u OUT")
	}
	// Un id que no es UUID no puede coincidir con ninguna fila.
	if !validOptionalID(q.ProductID) || !validOptionalID(q.UpdatedBy) {
		return &dto.StockMovementListResponse{
			Items:        []dto.StockMovementResponse{},
			PageResponse: dto.PageResponse{Total: 0, Page: q.Page, Limit: q.Limit},
		}, nil
	}
	filter := repository.MovementFilter{ProductID: q.ProductID, Type: q.Type, CreatedBy: q.UpdatedBy}
	list, total, err := uc.movementRepo.List(ctx, filter, q.Limit, q.Offset())
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	return &dto.StockMovementListResponse{
		Items:        dto.NewStockMovementViewResponses(list),
		PageResponse: dto.PageResponse{Total: total, Page: q.Page, Limit: q.Limit},
	}, nil
}

func validOptionalID(id string) bool {
	if id == "" {
		return true
	}
	_, err := uuid.Parse(id)
	return err == nil
}
