package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// Capacity es informativa: el ledger no rechaza cargas por encima de la capacidad.
type Warehouse struct {
	ID        string
	Name      string
	Location  string
	Capacity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
