package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
	"github.com/jhoicas/stockwise-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Identity usuario autenticado de la petición. El rol sale de la BD, no del token.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

// AuthUseCase casos de uso de autenticación: login, perfil y resolución de identidad.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   *jwt.Issuer
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   jwt.NewIssuer(jwtCfg.Secret, jwtCfg.Issuer, time.Duration(jwtCfg.ExpMinutes)*time.Minute),
	}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("credenciales inválidas: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("credenciales inválidas: %w", domain.ErrUnauthorized)
	}
	token, err := uc.tokens.Sign(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// Authorize valida firma y expiración del token y que el usuario siga existiendo.
// Cualquier falla devuelve ErrUnauthorized.
func (uc *AuthUseCase) Authorize(ctx context.Context, token string) (*Identity, error) {
	claims, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", domain.ErrUnauthorized)
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolver usuario del token: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("el usuario del token ya no existe: %w", domain.ErrUnauthorized)
	}
	return &Identity{UserID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role}, nil
}

// Profile devuelve el usuario autenticado (GET /api/auth/me).
func (uc *AuthUseCase) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("perfil: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}
