package dto

import "time"

// TransferRequest body para POST /api/inventory/transfers.
type TransferRequest struct {
	ProductID              string `json:"product_id"`
	Quantity               int64  `json:"quantity"`
	SourceWarehouseID      string `json:"source_warehouse_id"`
	DestinationWarehouseID string `json:"destination_warehouse_id"`
}

// MovementResponse salida de un movimiento de stock.
type MovementResponse struct {
	ID                     string    `json:"id"`
	ProductID              string    `json:"product_id"`
	Quantity               int64     `json:"quantity"`
	SourceWarehouseID      string    `json:"source_warehouse_id"`
	DestinationWarehouseID string    `json:"destination_warehouse_id"`
	Status                 string    `json:"status"`
	MovementDate           time.Time `json:"movement_date"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// MovementWithDetailsResponse movimiento con producto y bodegas resueltos.
type MovementWithDetailsResponse struct {
	MovementResponse
	Product              ProductResponse   `json:"product"`
	SourceWarehouse      WarehouseResponse `json:"source_warehouse"`
	DestinationWarehouse WarehouseResponse `json:"destination_warehouse"`
}
