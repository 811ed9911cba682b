package memory

import (
	"time"

	"github.com/invorya/stock-ledger/internal/domain"
	"github.com/invorya/stock-ledger/internal/domain/entity"
	"github.com/invorya/stock-ledger/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)
var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockRepo adaptador en memoria del puerto StockRepository. La variante
// locked (usada por el TxRunner) opera sin tomar el lock porque la transacción
// entera ya lo tiene.
type StockRepo struct {
	store  *Store
	locked bool
}

// NewStockRepository construye el adaptador sobre el almacén compartido.
func NewStockRepository(store *Store) *StockRepo {
	return &StockRepo{store: store}
}

// Get obtiene el stock de un producto en una bodega; (nil, nil) si no hay fila.
func (r *StockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	if !r.locked {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	return r.store.getStock(productID, warehouseID), nil
}

// GetForUpdate en memoria equivale a Get: el lock de la transacción ya excluye
// a cualquier otro escritor.
func (r *StockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	return r.Get(productID, warehouseID)
}

// Upsert inserta o reemplaza la fila de la pareja (producto, bodega).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	if !r.locked {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.putStock(stock)
	return nil
}

// List devuelve todas las filas en orden estable por clave compuesta.
func (r *StockRepo) List() ([]*entity.Stock, error) {
	if !r.locked {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	return r.store.listStocks(nil), nil
}

// ListByWarehouse filas de stock de una bodega.
func (r *StockRepo) ListByWarehouse(warehouseID string) ([]*entity.Stock, error) {
	if !r.locked {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	return r.store.listStocks(func(s *entity.Stock) bool { return s.WarehouseID == warehouseID }), nil
}

// ListByProduct filas de stock de un producto en todas las bodegas.
func (r *StockRepo) ListByProduct(productID string) ([]*entity.Stock, error) {
	if !r.locked {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	return r.store.listStocks(func(s *entity.Stock) bool { return s.ProductID == productID }), nil
}

// StockMovementRepo adaptador en memoria del log de traslados (append-only).
type StockMovementRepo struct {
	store  *Store
	locked bool
}

// NewStockMovementRepository construye el adaptador sobre el almacén compartido.
func NewStockMovementRepository(store *Store) *StockMovementRepo {
	return &StockMovementRepo{store: store}
}

// Create agrega un movimiento al final del log.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if !r.locked {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.appendMovement(movement)
	return nil
}

// GetByID obtiene un movimiento por ID; (nil, nil) si no existe.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	if !r.locked {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	return r.store.getMovement(id), nil
}

// UpdateStatus transiciona el estado de un movimiento no terminal.
func (r *StockMovementRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	if !r.locked {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	if !r.store.setMovementStatus(id, status, updatedAt) {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los movimientos en orden de creación.
func (r *StockMovementRepo) List() ([]*entity.StockMovement, error) {
	if !r.locked {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	return r.store.listMovements(nil), nil
}

// ListByProduct movimientos de un producto con rango de fechas opcional.
func (r *StockMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	if !r.locked {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	list := r.store.listMovements(func(m *entity.StockMovement) bool {
		return m.ProductID == productID && inRange(m.MovementDate, from, to)
	})
	return paginate(list, limit, offset), nil
}

// ListByWarehouse movimientos que tocan una bodega como origen o destino.
func (r *StockMovementRepo) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	if !r.locked {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	list := r.store.listMovements(func(m *entity.StockMovement) bool {
		touches := m.SourceWarehouseID == warehouseID || m.DestinationWarehouseID == warehouseID
		return touches && inRange(m.MovementDate, from, to)
	})
	return paginate(list, limit, offset), nil
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}
