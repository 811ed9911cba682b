package entity

import "time"

// Roles de usuario. La jerarquía (admin por encima de todo) no vive aquí:
// la resuelve el mapa rol→permisos en application/auth.
const (
	RoleAdmin            = "admin"
	RoleWarehouseManager = "warehouse_manager"
	RoleStaff            = "staff"
)

// User representa un usuario del sistema con su rol para RBAC.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Status       string // active, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
