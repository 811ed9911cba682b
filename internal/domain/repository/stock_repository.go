package repository

import "github.com/invorya/stock-ledger/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por
// producto+bodega. La pareja (ProductID, WarehouseID) es la identidad de la
// fila; Upsert crea o reemplaza, nunca duplica.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// Get devuelve (nil, nil) si no existe fila para la pareja.
	Get(productID, warehouseID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE en postgres).
	GetForUpdate(productID, warehouseID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	List() ([]*entity.Stock, error)
	ListByWarehouse(warehouseID string) ([]*entity.Stock, error)
	ListByProduct(productID string) ([]*entity.Stock, error)
}
