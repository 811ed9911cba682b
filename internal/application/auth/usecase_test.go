package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-ledger/internal/application/auth"
	"github.com/invorya/stock-ledger/internal/application/dto"
	"github.com/invorya/stock-ledger/internal/domain"
	"github.com/invorya/stock-ledger/internal/domain/entity"
	"github.com/invorya/stock-ledger/internal/infrastructure/memory"
	pkgjwt "github.com/invorya/stock-ledger/pkg/jwt"
)

const testSecret = "auth-usecase-test-secret"

func newAuthUC() *auth.AuthUseCase {
	return auth.NewAuthUseCase(memory.NewUserRepository(memory.NewStore()), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "stock-ledger-test",
	})
}

func TestRegisterUser_RolPorDefectoStaff(t *testing.T) {
	uc := newAuthUC()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, out.Role)
	assert.Equal(t, "active", out.Status)
	assert.NotEmpty(t, out.ID)
}

func TestRegisterUser_RolDesconocido_Rechazado(t *testing.T) {
	uc := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "s3cret",
		Role:     "superuser",
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

// El email es único case-insensitive.
func TestRegisterUser_EmailDuplicado_Rechazado(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ANA@example.com", Password: "otro"})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Login correcto devuelve un JWT firmado con el rol del usuario.
func TestLogin_TokenConRol(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cret",
		Role:     entity.RoleWarehouseManager,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleWarehouseManager, out.User.Role)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleWarehouseManager, role)
}

func TestLogin_PasswordIncorrecto_Unauthorized(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "equivocado"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

var errRepoCaido = errors.New("almacenamiento no disponible")

// failingUserRepo simula un backend caído: toda lectura falla.
type failingUserRepo struct{}

func (failingUserRepo) Create(*entity.User) error                { return errRepoCaido }
func (failingUserRepo) GetByID(string) (*entity.User, error)     { return nil, errRepoCaido }
func (failingUserRepo) FindByEmail(string) (*entity.User, error) { return nil, errRepoCaido }
func (failingUserRepo) List(int, int) ([]*entity.User, error)    { return nil, errRepoCaido }

// Un fallo del almacenamiento en el chequeo de email no puede leerse como
// "email libre": el error se propaga y no se registra nada.
func TestRegisterUser_FalloDeRepositorio_SePropaga(t *testing.T) {
	uc := auth.NewAuthUseCase(failingUserRepo{}, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60})

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "s3cret"})
	require.ErrorIs(t, err, errRepoCaido)
	assert.NotErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
