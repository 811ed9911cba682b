package entity

import "time"

// Stock representa la existencia actual de un producto en una bodega.
// La identidad es la pareja (ProductID, WarehouseID): nunca hay dos filas
// para la misma pareja. Quantity nunca es negativa.
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	LastUpdated time.Time
}
