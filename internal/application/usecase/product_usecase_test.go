package usecase_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-ledger/internal/application/dto"
	"github.com/invorya/stock-ledger/internal/application/usecase"
	"github.com/invorya/stock-ledger/internal/domain"
	"github.com/invorya/stock-ledger/internal/domain/entity"
	"github.com/invorya/stock-ledger/internal/infrastructure/memory"
)

func newProductUC() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()))
}

func validProduct() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:               "SKU-100",
		Name:              "Cinta métrica",
		Category:          "herramientas",
		Supplier:          "ACME",
		CostPrice:         decimal.NewFromFloat(2.50),
		SellingPrice:      decimal.NewFromFloat(4.99),
		MinStockThreshold: 3,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_AsignaIDYTimestamps(t *testing.T) {
	uc := newProductUC()

	out, err := uc.Create(validProduct())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "SKU-100", out.SKU)
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, out.CreatedAt, out.UpdatedAt, "al crear ambos timestamps son iguales")
}

func TestProductCreate_CamposInvalidos(t *testing.T) {
	uc := newProductUC()

	cases := []struct {
		name   string
		mutate func(*dto.CreateProductRequest)
	}{
		{"sku vacío", func(in *dto.CreateProductRequest) { in.SKU = "  " }},
		{"nombre vacío", func(in *dto.CreateProductRequest) { in.Name = "" }},
		{"precio de costo negativo", func(in *dto.CreateProductRequest) { in.CostPrice = decimal.NewFromInt(-1) }},
		{"precio de venta negativo", func(in *dto.CreateProductRequest) { in.SellingPrice = decimal.NewFromInt(-1) }},
		{"umbral negativo", func(in *dto.CreateProductRequest) { in.MinStockThreshold = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validProduct()
			tc.mutate(&in)
			_, err := uc.Create(in)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

// El SKU es único case-insensitive.
func TestProductCreate_SKUDuplicado_Rechazado(t *testing.T) {
	uc := newProductUC()
	_, err := uc.Create(validProduct())
	require.NoError(t, err)

	in := validProduct()
	in.SKU = "sku-100"
	_, err = uc.Create(in)
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / List / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductGetByID_NoExiste_NotFound(t *testing.T) {
	uc := newProductUC()
	_, err := uc.GetByID("no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductList_Pagina(t *testing.T) {
	uc := newProductUC()
	for _, sku := range []string{"A-1", "A-2", "A-3"} {
		in := validProduct()
		in.SKU = sku
		_, err := uc.Create(in)
		require.NoError(t, err)
	}

	out, err := uc.List(2, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	out, err = uc.List(2, 2)
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
}

func TestProductDelete_NoExiste_NotFound(t *testing.T) {
	uc := newProductUC()
	err := uc.Delete("no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_EliminaYDejaDeListar(t *testing.T) {
	uc := newProductUC()
	created, err := uc.Create(validProduct())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	_, err = uc.GetByID(created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// Solo los campos presentes se tocan; el resto se conserva.
func TestProductUpdate_MezclaParcial(t *testing.T) {
	uc := newProductUC()
	created, err := uc.Create(validProduct())
	require.NoError(t, err)

	nuevoNombre := "Cinta métrica 5m"
	nuevoPrecio := decimal.NewFromFloat(5.50)
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:         &nuevoNombre,
		SellingPrice: &nuevoPrecio,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, out.ID, "el ID es inmutable")
	assert.Equal(t, nuevoNombre, out.Name)
	assert.True(t, nuevoPrecio.Equal(out.SellingPrice))
	assert.Equal(t, created.SKU, out.SKU, "el SKU no tocado se conserva")
	assert.True(t, created.CostPrice.Equal(out.CostPrice))
	assert.True(t, out.UpdatedAt.After(created.UpdatedAt) || out.UpdatedAt.Equal(created.UpdatedAt))
}

// La mezcla también se valida: dejar el nombre vacío falla.
func TestProductUpdate_MezclaInvalida_Rechazada(t *testing.T) {
	uc := newProductUC()
	created, err := uc.Create(validProduct())
	require.NoError(t, err)

	vacio := ""
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Name: &vacio})
	require.ErrorIs(t, err, domain.ErrValidation)

	// El registro no mutó.
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
}

func TestProductUpdate_NoExiste_NotFound(t *testing.T) {
	uc := newProductUC()
	nombre := "x"
	_, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &nombre})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Cambiar el SKU al de otro producto también es duplicado (case-insensitive),
// igual que en Create.
func TestProductUpdate_SKUDeOtroProducto_Rechazado(t *testing.T) {
	uc := newProductUC()
	a, err := uc.Create(validProduct())
	require.NoError(t, err)
	inB := validProduct()
	inB.SKU = "SKU-200"
	_, err = uc.Create(inB)
	require.NoError(t, err)

	ajeno := "sku-200"
	_, err = uc.Update(a.ID, dto.UpdateProductRequest{SKU: &ajeno})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	// El registro no mutó.
	got, err := uc.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "SKU-100", got.SKU)
}

// Re-escribir el propio SKU (p. ej. cambio de mayúsculas) no es duplicado.
func TestProductUpdate_PropioSKU_Permitido(t *testing.T) {
	uc := newProductUC()
	created, err := uc.Create(validProduct())
	require.NoError(t, err)

	propio := "sku-100"
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{SKU: &propio})
	require.NoError(t, err)
	assert.Equal(t, "sku-100", out.SKU)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propagación de errores del repositorio
// ──────────────────────────────────────────────────────────────────────────────

var errRepoCaido = errors.New("almacenamiento no disponible")

// failingProductRepo simula un backend caído: toda lectura falla.
type failingProductRepo struct{}

func (failingProductRepo) Create(*entity.Product) error                 { return errRepoCaido }
func (failingProductRepo) GetByID(string) (*entity.Product, error)      { return nil, errRepoCaido }
func (failingProductRepo) GetBySKU(string) (*entity.Product, error)     { return nil, errRepoCaido }
func (failingProductRepo) Update(*entity.Product) error                 { return errRepoCaido }
func (failingProductRepo) List(int, int) ([]*entity.Product, error)     { return nil, errRepoCaido }
func (failingProductRepo) Delete(string) error                          { return errRepoCaido }

// Un fallo del almacenamiento en el chequeo de SKU no puede leerse como
// "no hay duplicado": el error se propaga.
func TestProductCreate_FalloDeRepositorio_SePropaga(t *testing.T) {
	uc := usecase.NewProductUseCase(failingProductRepo{})

	_, err := uc.Create(validProduct())
	require.ErrorIs(t, err, errRepoCaido)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
}
