package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockwise-api/internal/application/auth"
	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/domain/repository/mocks"
	pkgjwt "github.com/jhoicas/stockwise-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

var jwtCfg = auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "stockwise-test"}

func signToken(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.NewIssuer(testSecret, "stockwise-test", time.Hour).Sign(userID, role)
	require.NoError(t, err)
	return tok
}

func hashed(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{
		ID: "u-1", Email: "admin@example.com", Name: "Admin", Role: entity.RoleAdmin,
		PasswordHash: hashed(t, "admin123"),
	}

	t.Run("credenciales correctas", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByEmail", ctx, "admin@example.com").Return(user, nil).Once()
		uc := auth.NewAuthUseCase(repo, jwtCfg)

		out, err := uc.Login(ctx, dto.LoginRequest{Email: "  Admin@Example.com ", Password: "admin123"})
		require.NoError(t, err)
		assert.Equal(t, "u-1", out.User.ID)

		claims, err := pkgjwt.NewIssuer(testSecret, "stockwise-test", time.Hour).Verify(out.Token)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID)
		assert.Equal(t, entity.RoleAdmin, claims.Role)
		repo.AssertExpectations(t)
	})

	t.Run("password incorrecto", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByEmail", ctx, "admin@example.com").Return(user, nil).Once()
		uc := auth.NewAuthUseCase(repo, jwtCfg)

		_, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@example.com", Password: "otra"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("email inexistente", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByEmail", ctx, "nadie@example.com").Return(nil, nil).Once()
		uc := auth.NewAuthUseCase(repo, jwtCfg)

		_, err := uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("email mal formado", func(t *testing.T) {
		uc := auth.NewAuthUseCase(new(mocks.MockUserRepository), jwtCfg)
		_, err := uc.Login(ctx, dto.LoginRequest{Email: "no-email", Password: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAuthorize(t *testing.T) {
	ctx := context.Background()

	t.Run("rol desde la BD, no desde el token", func(t *testing.T) {
		// El token dice ADMIN pero el usuario fue degradado a STAFF.
		tok := signToken(t, "u-1", entity.RoleAdmin)

		repo := new(mocks.MockUserRepository)
		repo.On("GetByID", ctx, "u-1").
			Return(&entity.User{ID: "u-1", Email: "a@example.com", Name: "A", Role: entity.RoleStaff}, nil).Once()
		uc := auth.NewAuthUseCase(repo, jwtCfg)

		id, err := uc.Authorize(ctx, tok)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleStaff, id.Role)
		assert.Equal(t, "a@example.com", id.Email)
	})

	t.Run("usuario eliminado", func(t *testing.T) {
		tok := signToken(t, "u-2", entity.RoleStaff)

		repo := new(mocks.MockUserRepository)
		repo.On("GetByID", ctx, "u-2").Return(nil, nil).Once()
		uc := auth.NewAuthUseCase(repo, jwtCfg)

		_, err := uc.Authorize(ctx, tok)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("token inválido no consulta la BD", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		uc := auth.NewAuthUseCase(repo, jwtCfg)

		_, err := uc.Authorize(ctx, "token.invalido.aqui")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("error de BD no es Unauthorized", func(t *testing.T) {
		tok := signToken(t, "u-3", entity.RoleStaff)

		repo := new(mocks.MockUserRepository)
		repo.On("GetByID", ctx, "u-3").Return(nil, errors.New("timeout")).Once()
		uc := auth.NewAuthUseCase(repo, jwtCfg)

		_, err := uc.Authorize(ctx, tok)
		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrUnauthorized))
	})
}

func TestProfile_UsuarioInexistente(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("GetByID", mock.Anything, "u-9").Return(nil, nil).Once()
	uc := auth.NewAuthUseCase(repo, jwtCfg)

	_, err := uc.Profile(context.Background(), "u-9")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
