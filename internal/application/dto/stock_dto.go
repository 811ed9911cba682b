package dto

import "time"

// SetQuantityRequest body para la sobrescritura directa de cantidad (admin).
type SetQuantityRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
}

// StockResponse salida de una fila de stock.
type StockResponse struct {
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	LastUpdated time.Time `json:"last_updated"`
}

// StockWithDetailsResponse fila de stock con su producto y bodega resueltos.
// Vista de solo lectura, nunca se persiste.
type StockWithDetailsResponse struct {
	StockResponse
	Product   ProductResponse   `json:"product"`
	Warehouse WarehouseResponse `json:"warehouse"`
}
