package auth

import "github.com/invorya/stock-ledger/internal/domain/entity"

// Permission es una capacidad concreta sobre el sistema. Las rutas se
// protegen por permiso, no por comparación de strings de rol.
type Permission string

const (
	PermCatalogRead   Permission = "catalog:read"
	PermCatalogWrite  Permission = "catalog:write"
	PermStockRead     Permission = "stock:read"
	PermStockAdjust   Permission = "stock:adjust"
	PermStockTransfer Permission = "stock:transfer"
	PermMovementsRead Permission = "movements:read"
	PermUsersManage   Permission = "users:manage"
)

// rolePermissions mapa explícito rol→permisos. El admin no pasa por un atajo
// de string: simplemente tiene el conjunto completo.
var rolePermissions = map[string]map[Permission]bool{
	entity.RoleAdmin: {
		PermCatalogRead:   true,
		PermCatalogWrite:  true,
		PermStockRead:     true,
		PermStockAdjust:   true,
		PermStockTransfer: true,
		PermMovementsRead: true,
		PermUsersManage:   true,
	},
	entity.RoleWarehouseManager: {
		PermCatalogRead:   true,
		PermCatalogWrite:  true,
		PermStockRead:     true,
		PermStockTransfer: true,
		PermMovementsRead: true,
	},
	entity.RoleStaff: {
		PermCatalogRead:   true,
		PermStockRead:     true,
		PermMovementsRead: true,
	},
}

// HasPermission evalúa si un rol tiene el permiso. Función pura, sin estado:
// un rol desconocido no tiene ningún permiso.
func HasPermission(role string, perm Permission) bool {
	return rolePermissions[role][perm]
}

// ValidRole indica si el string corresponde a un rol conocido.
func ValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}
