package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockwise-api/internal/application/dto"
	"github.com/jhoicas/stockwise-api/internal/application/usecase"
	"github.com/jhoicas/stockwise-api/internal/domain"
	"github.com/jhoicas/stockwise-api/internal/domain/entity"
	"github.com/jhoicas/stockwise-api/internal/domain/repository"
	"github.com/jhoicas/stockwise-api/internal/domain/repository/mocks"
)

func newUserUC(repo *mocks.MockUserRepository) *usecase.UserUseCase {
	return usecase.NewUserUseCase(repo, fixedClock{fixedNow}, &seqIDs{}, usecase.WithPasswordCost(bcrypt.MinCost))
}

func sampleUser() *entity.User {
	return &entity.User{
		ID:        userID,
		Email:     "staff@stockwise.test",
		Name:      "Staff",
		Role:      entity.RoleStaff,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
}

func TestUserUseCase_Create_NormalizaEmailYHashea(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "nuevo@stockwise.test").Return(nil, nil)
	var saved *entity.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.User) }).
		Return(nil)
	uc := newUserUC(repo)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Nuevo",
		Email:    "  Nuevo@StockWise.test ",
		Password: "secreto1",
		Role:     entity.RoleStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, "nuevo@stockwise.test", out.Email)
	require.NotNil(t, saved)
	assert.NotEqual(t, "secreto1", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("secreto1")))
}

func TestUserUseCase_Create_EmailDuplicado(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "staff@stockwise.test").Return(sampleUser(), nil)
	uc := newUserUC(repo)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Otro", Email: "staff@stockwise.test", Password: "secreto1", Role: entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserUseCase_Create_RolInvalido(t *testing.T) {
	uc := newUserUC(new(mocks.MockUserRepository))

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "X", Email: "x@stockwise.test", Password: "secreto1", Role: "ROOT",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUseCase_List(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("List", mock.Anything, repository.UserFilter{Role: entity.RoleStaff, Search: "sta"}, 10, 0).
		Return([]*entity.User{sampleUser()}, 1, nil)
	uc := newUserUC(repo)

	out, err := uc.List(context.Background(), dto.UserListQuery{Role: "staff", Search: " sta "})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "staff@stockwise.test", out.Items[0].Email)

	_, err = uc.List(context.Background(), dto.UserListQuery{Role: "guest"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUseCase_Update_PasswordVacioNoCambia(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	u := sampleUser()
	u.PasswordHash = "hash-original"
	repo.On("GetByID", mock.Anything, userID).Return(u, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(x *entity.User) bool {
		return x.PasswordHash == "hash-original" && x.Role == entity.RoleAdmin
	})).Return(nil)
	uc := newUserUC(repo)

	role, empty := entity.RoleAdmin, ""
	out, err := uc.Update(context.Background(), userID, dto.UpdateUserRequest{Role: &role, Password: &empty})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	repo.AssertExpectations(t)
}

func TestUserUseCase_Update_EmailDeOtroUsuario(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	other := sampleUser()
	other.ID = otherID
	other.Email = "admin@stockwise.test"
	repo.On("GetByID", mock.Anything, userID).Return(sampleUser(), nil)
	repo.On("GetByEmail", mock.Anything, "admin@stockwise.test").Return(other, nil)
	uc := newUserUC(repo)

	email := "ADMIN@stockwise.test"
	_, err := uc.Update(context.Background(), userID, dto.UpdateUserRequest{Email: &email})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserUseCase_Create_PasswordExcede72Bytes(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ana@stockwise.test").Return(nil, nil)
	uc := newUserUC(repo)

	// 40 runas de 2 bytes: pasa el máximo de caracteres pero no el de bcrypt.
	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Ana", Email: "ana@stockwise.test", Password: strings.Repeat("ñ", 40), Role: entity.RoleStaff,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserUseCase_Delete(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("Delete", mock.Anything, otherID).Return(nil).Once()
	repo.On("Delete", mock.Anything, productID).Return(domain.ErrNotFound).Once()
	uc := newUserUC(repo)

	err := uc.Delete(context.Background(), userID, userID)
	assert.ErrorIs(t, err, domain.ErrCannotDeleteSelf)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, uc.Delete(context.Background(), userID, otherID))
	assert.ErrorIs(t, uc.Delete(context.Background(), userID, productID), domain.ErrUserNotFound)
	repo.AssertExpectations(t)
}

func TestUserUseCase_Delete_MismoUsuarioEnOtraForma(t *testing.T) {
	const adminID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	repo := new(mocks.MockUserRepository)
	uc := newUserUC(repo)

	for _, id := range []string{
		"AAAAAAAA-BBBB-CCCC-DDDD-EEEEEEEEEEEE",
		"{aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee}",
		"urn:uuid:aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		"aaaaaaaabbbbccccddddeeeeeeeeeeee",
	} {
		assert.ErrorIs(t, uc.Delete(context.Background(), adminID, id), domain.ErrCannotDeleteSelf, id)
	}
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserUseCase_Delete_EnviaIDCanonico(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("Delete", mock.Anything, "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee").Return(nil).Once()
	uc := newUserUC(repo)

	require.NoError(t, uc.Delete(context.Background(), userID, "{AAAAAAAA-BBBB-CCCC-DDDD-EEEEEEEEEEEE}"))
	repo.AssertExpectations(t)
}

func TestUserUseCase_Ensure_ActualizaExistente(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	u := sampleUser()
	repo.On("GetByEmail", mock.Anything, "staff@stockwise.test").Return(u, nil)
	repo.On("GetByID", mock.Anything, userID).Return(u, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	uc := newUserUC(repo)

	out, created, err := uc.Ensure(context.Background(), dto.CreateUserRequest{
		Name: "Jefe", Email: "staff@stockwise.test", Password: "secreto1", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Jefe", out.Name)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
