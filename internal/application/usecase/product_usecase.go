package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/domain/inventory"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
	"github.com/jhoicas/stockwise-api/pkg/logger"
)

// Intentos de creación cuando el SKU generado choca con uno existente.
const skuAttempts = 3

// productSortFields lista permitida de campos de orden (acepta también camelCase del frontend).
var productSortFields = map[string]string{
	"name":          "name",
	"sku":           "sku",
	"category":      "category",
	"supplier":      "supplier",
	"price":         "price",
	"quantity":      "quantity",
	"reorder_level": "reorder_level",
	"reorderLevel":  "reorder_level",
	"created_at":    "created_at",
	"createdAt":     "created_at",
	"updated_at":    "updated_at",
	"updatedAt":     "updated_at",
}

// DefaultProductSort orden por defecto: más recientes primero.
var DefaultProductSort = repository.ProductSort{Field: "created_at", Desc: true}

// ParseProductSort interpreta "campo:dirección". Campo desconocido -> orden por defecto;
// cualquier dirección distinta de "asc" es descendente.
func ParseProductSort(s string) repository.ProductSort {
	if strings.TrimSpace(s) == "" {
		return DefaultProductSort
	}
	field, dir, _ := strings.Cut(s, ":")
	col, ok := productSortFields[strings.TrimSpace(field)]
	if !ok {
		return DefaultProductSort
	}
	return repository.ProductSort{Field: col, Desc: !strings.EqualFold(strings.TrimSpace(dir), "asc")}
}

// ProductFilterFromQuery traduce los filtros HTTP al filtro del repositorio.
func ProductFilterFromQuery(q dto.ProductListQuery) repository.ProductFilter {
	return repository.ProductFilter{
		Search:   strings.TrimSpace(q.Search),
		Category: strings.TrimSpace(q.Category),
		Supplier: strings.TrimSpace(q.Supplier),
		LowStock: q.LowStock,
	}
}

// ProductUseCase aplica reglas de negocio del catálogo: CRUD, operaciones masivas e importación CSV.
type ProductUseCase struct {
	repo      repository.ProductRepository
	csv       ports.ProductCSVCodec
	clock     ports.Clock
	ids       ports.IDGenerator
	log       *logger.Logger
	skuSuffix func() int
}

// NewProductUseCase construye el caso de uso con el puerto de persistencia.
func NewProductUseCase(
	repo repository.ProductRepository,
	csv ports.ProductCSVCodec,
	clock ports.Clock,
	ids ports.IDGenerator,
	log *logger.Logger,
) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{
		repo:      repo,
		csv:       csv,
		clock:     clock,
		ids:       ids,
		log:       log,
		skuSuffix: func() int { return 1000 + rand.IntN(9000) },
	}
}

// NewSKU genera un SKU SKU-YYYYMMDDHHMMSS-NNNN.
func (uc *ProductUseCase) NewSKU() string {
	return inventory.FormatSKU(uc.clock.Now(), uc.skuSuffix())
}

// Create crea un producto. Sin SKU se genera uno; SKU duplicado -> ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Supplier = strings.TrimSpace(in.Supplier)
	in.Barcode = strings.TrimSpace(in.Barcode)
	if err := validateCreateProduct(in); err != nil {
		return nil, err
	}

	if in.SKU != "" {
		existing, err := uc.repo.GetBySKU(ctx, in.SKU)
		if err != nil {
			return nil, fmt.Errorf("buscar sku: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("sku %q: %w", in.SKU, domain.ErrDuplicate)
		}
	}

	now := uc.clock.Now()
	p := &entity.Product{
		ID:           uc.ids.NewID(),
		SKU:          in.SKU,
		Name:         in.Name,
		Category:     in.Category,
		Supplier:     in.Supplier,
		Price:        in.Price.Round(2),
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		Barcode:      in.Barcode,
		Variants:     roundVariantPrices(dto.ToVariants(in.Variants)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.create(ctx, p); err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(p)
	return &out, nil
}

// create persiste p; si el SKU viene vacío lo genera y reintenta ante colisión.
func (uc *ProductUseCase) create(ctx context.Context, p *entity.Product) error {
	generated := p.SKU == ""
	if generated {
		p.SKU = uc.NewSKU()
	}
	for attempt := 1; ; attempt++ {
		err := uc.repo.Create(ctx, p)
		if err == nil {
			return nil
		}
		if !generated || !errors.Is(err, domain.ErrDuplicate) || attempt == skuAttempts {
			return fmt.Errorf("crear producto: %w", err)
		}
		p.SKU = uc.NewSKU()
	}
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(p)
	return &out, nil
}

func (uc *ProductUseCase) find(ctx context.Context, id string) (*entity.Product, error) {
	return findProduct(ctx, uc.repo, id)
}

// findProduct busca por ID y traduce "no existe" (o ID mal formado) en ErrNotFound.
func findProduct(ctx context.Context, repo repository.ProductRepository, id string) (*entity.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("producto %q: %w", id, domain.ErrNotFound)
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("producto %q: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

// List lista productos con filtros, orden y paginación.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	q.Normalize()
	list, total, err := uc.repo.List(ctx, ProductFilterFromQuery(q), ParseProductSort(q.Sort), q.Limit, q.Offset())
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	return &dto.ProductListResponse{
		Items:        dto.NewProductResponses(list),
		PageResponse: dto.PageResponse{Total: total, Page: q.Page, Limit: q.Limit},
	}, nil
}

// Update actualiza parcialmente un producto. Quantity editado aquí no genera entrada en el ledger.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validateUpdateProduct(&in); err != nil {
		return nil, err
	}
	p, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.SKU != nil && *in.SKU != p.SKU {
		other, err := uc.repo.GetBySKU(ctx, *in.SKU)
		if err != nil {
			return nil, fmt.Errorf("buscar sku: %w", err)
		}
		if other != nil && other.ID != p.ID {
			return nil, fmt.Errorf("sku %q: %w", *in.SKU, domain.ErrDuplicate)
		}
		p.SKU = *in.SKU
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Supplier != nil {
		p.Supplier = *in.Supplier
	}
	if in.Price != nil {
		p.Price = in.Price.Round(2)
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if in.ReorderLevel != nil {
		p.ReorderLevel = *in.ReorderLevel
	}
	if in.Barcode != nil {
		p.Barcode = *in.Barcode
	}
	if in.Variants != nil {
		p.Variants = roundVariantPrices(dto.ToVariants(*in.Variants))
	}
	p.UpdatedAt = uc.clock.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	out := dto.NewProductResponse(p)
	return &out, nil
}

// Delete elimina un producto. Sus entradas del ledger se conservan.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("producto %q: %w", id, domain.ErrNotFound)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	return nil
}

// BulkUpdate escribe solo category, supplier, price y reorder_level en los productos indicados.
// Strings vacíos cuentan como ausentes; sin ningún campo válido -> ErrInvalidInput.
func (uc *ProductUseCase) BulkUpdate(ctx context.Context, in dto.BulkUpdateRequest) (*dto.BulkUpdateResponse, error) {
	ve := &domain.ValidationError{}
	if len(in.ProductIDs) == 0 {
		ve.Add("product_ids", "se requiere al menos un id")
	}
	fields := repository.ProductBulkFields{
		Category:     nonEmpty(in.Updates.Category),
		Supplier:     nonEmpty(in.Updates.Supplier),
		Price:        in.Updates.Price,
		ReorderLevel: in.Updates.ReorderLevel,
	}
	if fields.Price != nil {
		checkPrice(ve, "updates.price", *fields.Price)
		rounded := fields.Price.Round(2)
		fields.Price = &rounded
	}
	if fields.ReorderLevel != nil {
		checkQuantity(ve, "updates.reorder_level", *fields.ReorderLevel)
	}
	if fields.IsEmpty() {
		ve.Add("updates", "no hay campos válidos para actualizar")
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	ids := validIDs(in.ProductIDs)
	if len(ids) == 0 {
		return &dto.BulkUpdateResponse{}, nil
	}
	matched, modified, err := uc.repo.BulkUpdate(ctx, ids, fields, uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("actualización masiva: %w", err)
	}
	return &dto.BulkUpdateResponse{MatchedCount: matched, ModifiedCount: modified}, nil
}

// BulkDelete elimina los productos indicados.
func (uc *ProductUseCase) BulkDelete(ctx context.Context, in dto.BulkDeleteRequest) (*dto.BulkDeleteResponse, error) {
	if len(in.ProductIDs) == 0 {
		return nil, domain.NewValidationError("product_ids", "se requiere al menos un id")
	}
	ids := validIDs(in.ProductIDs)
	if len(ids) == 0 {
		return &dto.BulkDeleteResponse{}, nil
	}
	deleted, err := uc.repo.BulkDelete(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("borrado masivo: %w", err)
	}
	return &dto.BulkDeleteResponse{DeletedCount: deleted}, nil
}

// ── validación ────────────────────────────────────────────────────────────────

func validateCreateProduct(in dto.CreateProductRequest) error {
	ve := &domain.ValidationError{}
	if err := dto.Validate(in); err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		ve.Fields = append(ve.Fields, verr.Fields...)
	}
	checkPrice(ve, "price", in.Price)
	validateVariantPrices(ve, in.Variants)
	return ve.OrNil()
}

func validateUpdateProduct(in *dto.UpdateProductRequest) error {
	ve := &domain.ValidationError{}
	required := func(field string, v *string, max int) {
		if v == nil {
			return
		}
		*v = strings.TrimSpace(*v)
		switch {
		case *v == "":
			ve.Add(field, "no puede estar vacío")
		case len(*v) > max:
			ve.Add(field, fmt.Sprintf("debe tener como máximo %d caracteres", max))
		}
	}
	required("sku", in.SKU, 100)
	required("name", in.Name, 200)
	required("category", in.Category, 100)
	required("supplier", in.Supplier, 200)
	if in.Barcode != nil {
		*in.Barcode = strings.TrimSpace(*in.Barcode)
	}
	if in.Price != nil {
		checkPrice(ve, "price", *in.Price)
	}
	if in.Quantity != nil {
		checkQuantity(ve, "quantity", *in.Quantity)
	}
	if in.ReorderLevel != nil {
		checkQuantity(ve, "reorder_level", *in.ReorderLevel)
	}
	if in.Variants != nil {
		for i, v := range *in.Variants {
			if err := dto.Validate(v); err != nil {
				var verr *domain.ValidationError
				if !errors.As(err, &verr) {
					return err
				}
				for _, f := range verr.Fields {
					ve.Add(fmt.Sprintf("variants[%d].%s", i, f.Field), f.Message)
				}
			}
		}
		validateVariantPrices(ve, *in.Variants)
	}
	return ve.OrNil()
}

func validateVariantPrices(ve *domain.ValidationError, variants []dto.VariantDTO) {
	for i, v := range variants {
		checkPrice(ve, fmt.Sprintf("variants[%d].price", i), v.Price)
	}
}

func checkPrice(ve *domain.ValidationError, field string, d decimal.Decimal) {
	switch {
	case d.IsNegative():
		ve.Add(field, "debe ser mayor o igual a 0")
	case !inventory.ValidPrice(d):
		ve.Add(field, "debe ser menor a "+inventory.MaxPrice.String())
	}
}

func checkQuantity(ve *domain.ValidationError, field string, n int) {
	switch {
	case n < 0:
		ve.Add(field, "debe ser mayor o igual a 0")
	case !inventory.ValidQuantity(n):
		ve.Add(field, fmt.Sprintf("debe ser como máximo %d", inventory.MaxQuantity))
	}
}

func roundVariantPrices(variants []entity.Variant) []entity.Variant {
	for i := range variants {
		variants[i].Price = variants[i].Price.Round(2)
	}
	return variants
}

// nonEmpty devuelve nil si s es nil o queda vacío tras recortar espacios.
func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// validIDs descarta ids que no son UUID (no pueden coincidir) y repetidos.
func validIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		u, err := uuid.Parse(strings.TrimSpace(id))
		if err != nil {
			continue
		}
		key := u.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// parseImportNumber interpreta un número del CSV: vacío = 0; negativo o no numérico -> false.
func parseImportNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}
