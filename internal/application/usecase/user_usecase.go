package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/application/ports"
	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios (solo ADMIN llega aquí desde HTTP).
type UserUseCase struct {
	repo  repository.UserRepository
	clock ports.Clock
	ids   ports.IDGenerator
	cost  int
}

// UserOption personaliza UserUseCase.
type UserOption func(*UserUseCase)

// WithPasswordCost fija el costo bcrypt (tests usan bcrypt.MinCost).
func WithPasswordCost(cost int) UserOption {
	return func(uc *UserUseCase) { uc.cost = cost }
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, clock ports.Clock, ids ports.IDGenerator, opts ...UserOption) *UserUseCase {
	uc := &UserUseCase{repo: repo, clock: clock, ids: ids, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create crea un usuario. Email se guarda en minúsculas; repetido -> ErrEmailAlreadyExists.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %q: %w", in.Email, domain.ErrEmailAlreadyExists)
	}

	hash, err := uc.hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	user := &entity.User{
		ID:           uc.ids.NewID(),
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// List lista usuarios filtrando por rol y búsqueda en nombre/email.
func (uc *UserUseCase) List(ctx context.Context, q dto.UserListQuery) (*dto.UserListResponse, error) {
	q.Normalize()
	q.Role = strings.ToUpper(strings.TrimSpace(q.Role))
	if q.Role != "" && !entity.ValidRole(q.Role) {
		return nil, domain.NewValidationError("role", "debe ser uno de: ADMIN STAFF")
	}
	users, total, err := uc.repo.List(ctx, repository.UserFilter{
		Role:   q.Role,
		Search: strings.TrimSpace(q.Search),
	}, q.Limit, q.Offset())
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.NewUserResponse(u))
	}
	return &dto.UserListResponse{
		Items:        items,
		PageResponse: dto.PageResponse{Total: total, Page: q.Page, Limit: q.Limit},
	}, nil
}

// Update actualiza nombre, email, rol y/o password. Password vacío no cambia la contraseña.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		*in.Email = normalizeEmail(*in.Email)
	}
	if in.Password != nil && *in.Password == "" {
		in.Password = nil
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		other, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, fmt.Errorf("buscar email: %w", err)
		}
		if other != nil && other.ID != user.ID {
			return nil, fmt.Errorf("email %q: %w", *in.Email, domain.ErrEmailAlreadyExists)
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Password != nil {
		hash, err := uc.hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = uc.clock.Now()

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("actualizar usuario: %w", err)
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// Delete elimina un usuario. Un actor no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	target, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("usuario %q: %w", id, domain.ErrUserNotFound)
	}
	// PostgreSQL acepta mayúsculas, llaves y urn:uuid:, así que se compara la forma canónica.
	if actor, err := uuid.Parse(actorID); err == nil && actor == target {
		return domain.ErrCannotDeleteSelf
	}
	id = target.String()
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("usuario %q: %w", id, domain.ErrUserNotFound)
		}
		return fmt.Errorf("eliminar usuario: %w", err)
	}
	return nil
}

// Ensure crea el usuario o, si el email ya existe, actualiza nombre, rol y password (seed).
// Devuelve true si lo creó.
func (uc *UserUseCase) Ensure(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, bool, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := dto.Validate(in); err != nil {
		return nil, false, err
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, false, fmt.Errorf("buscar email: %w", err)
	}
	if existing == nil {
		out, err := uc.Create(ctx, in)
		return out, err == nil, err
	}
	out, err := uc.Update(ctx, existing.ID, dto.UpdateUserRequest{
		Name:     &in.Name,
		Role:     &in.Role,
		Password: &in.Password,
	})
	return out, false, err
}

func (uc *UserUseCase) find(ctx context.Context, id string) (*entity.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("usuario %q: %w", id, domain.ErrUserNotFound)
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener usuario: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("usuario %q: %w", id, domain.ErrUserNotFound)
	}
	return user, nil
}

// bcrypt solo considera los primeros 72 bytes.
const maxPasswordBytes = 72

func (uc *UserUseCase) hash(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", domain.NewValidationError("password", fmt.Sprintf("debe tener como máximo %d bytes", maxPasswordBytes))
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
