package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invorya/stock-ledger/internal/domain/entity"
)

var allPermissions = []Permission{
	PermCatalogRead,
	PermCatalogWrite,
	PermStockRead,
	PermStockAdjust,
	PermStockTransfer,
	PermMovementsRead,
	PermUsersManage,
}

// El admin tiene el conjunto completo, sin atajos de string.
func TestHasPermission_AdminTieneTodos(t *testing.T) {
	for _, perm := range allPermissions {
		assert.True(t, HasPermission(entity.RoleAdmin, perm), "admin debe tener %s", perm)
	}
}

// El jefe de bodega puede trasladar y tocar catálogo pero no sobrescribir
// cantidades ni administrar usuarios.
func TestHasPermission_WarehouseManager(t *testing.T) {
	role := entity.RoleWarehouseManager

	assert.True(t, HasPermission(role, PermCatalogRead))
	assert.True(t, HasPermission(role, PermCatalogWrite))
	assert.True(t, HasPermission(role, PermStockRead))
	assert.True(t, HasPermission(role, PermStockTransfer))
	assert.True(t, HasPermission(role, PermMovementsRead))

	assert.False(t, HasPermission(role, PermStockAdjust))
	assert.False(t, HasPermission(role, PermUsersManage))
}

// El staff solo lee.
func TestHasPermission_StaffSoloLectura(t *testing.T) {
	role := entity.RoleStaff

	assert.True(t, HasPermission(role, PermCatalogRead))
	assert.True(t, HasPermission(role, PermStockRead))
	assert.True(t, HasPermission(role, PermMovementsRead))

	assert.False(t, HasPermission(role, PermCatalogWrite))
	assert.False(t, HasPermission(role, PermStockAdjust))
	assert.False(t, HasPermission(role, PermStockTransfer))
	assert.False(t, HasPermission(role, PermUsersManage))
}

// Un rol desconocido (o vacío) no tiene ningún permiso.
func TestHasPermission_RolDesconocido_SinPermisos(t *testing.T) {
	for _, role := range []string{"", "superuser", "ADMIN"} {
		for _, perm := range allPermissions {
			assert.False(t, HasPermission(role, perm), "rol %q no debe tener %s", role, perm)
		}
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(entity.RoleAdmin))
	assert.True(t, ValidRole(entity.RoleWarehouseManager))
	assert.True(t, ValidRole(entity.RoleStaff))

	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("Admin"))
	assert.False(t, ValidRole("vendedor"))
}
