package repository

import (
	"time"

	"github.com/invorya/stock-ledger/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para el log de
// traslados. El log es append-only: solo se permite crear y transicionar el
// estado de un movimiento no terminal; nunca borrar.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// UpdateStatus transiciona el estado de un movimiento no terminal.
	UpdateStatus(id, status string, updatedAt time.Time) error
	// List devuelve todos los movimientos en orden de creación (orden de auditoría).
	List() ([]*entity.StockMovement, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
