package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-ledger/internal/application/dto"
	"github.com/invorya/stock-ledger/internal/application/usecase"
	"github.com/invorya/stock-ledger/internal/domain"
	"github.com/invorya/stock-ledger/internal/infrastructure/memory"
)

func newWarehouseUC() *usecase.WarehouseUseCase {
	return usecase.NewWarehouseUseCase(memory.NewWarehouseRepository(memory.NewStore()))
}

func TestWarehouseCreate_Valida(t *testing.T) {
	uc := newWarehouseUC()

	out, err := uc.Create(dto.CreateWarehouseRequest{Name: "Central", Location: "Bogotá", Capacity: 500})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, int64(500), out.Capacity)
}

// Capacity debe ser positiva y el nombre no vacío.
func TestWarehouseCreate_Invalida(t *testing.T) {
	uc := newWarehouseUC()

	cases := []dto.CreateWarehouseRequest{
		{Name: "", Capacity: 100},
		{Name: "   ", Capacity: 100},
		{Name: "Central", Capacity: 0},
		{Name: "Central", Capacity: -10},
	}
	for _, in := range cases {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrValidation, "entrada %+v debe rechazarse", in)
	}
}

func TestWarehouseUpdate_MezclaParcial(t *testing.T) {
	uc := newWarehouseUC()
	created, err := uc.Create(dto.CreateWarehouseRequest{Name: "Central", Location: "Bogotá", Capacity: 500})
	require.NoError(t, err)

	nuevaUbicacion := "Medellín"
	out, err := uc.Update(created.ID, dto.UpdateWarehouseRequest{Location: &nuevaUbicacion})
	require.NoError(t, err)

	assert.Equal(t, "Central", out.Name)
	assert.Equal(t, nuevaUbicacion, out.Location)
	assert.Equal(t, int64(500), out.Capacity)
}

func TestWarehouseUpdate_CapacidadInvalida_Rechazada(t *testing.T) {
	uc := newWarehouseUC()
	created, err := uc.Create(dto.CreateWarehouseRequest{Name: "Central", Capacity: 500})
	require.NoError(t, err)

	cero := int64(0)
	_, err = uc.Update(created.ID, dto.UpdateWarehouseRequest{Capacity: &cero})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestWarehouseGetByID_NoExiste_NotFound(t *testing.T) {
	uc := newWarehouseUC()
	_, err := uc.GetByID("no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarehouseDelete_EliminaExistente(t *testing.T) {
	uc := newWarehouseUC()
	created, err := uc.Create(dto.CreateWarehouseRequest{Name: "Central", Capacity: 500})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	require.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}
