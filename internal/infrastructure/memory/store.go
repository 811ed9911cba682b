package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/invorya/stock-ledger/internal/domain/entity"
)

// stockKey identidad compuesta de una fila de stock. Usarla como clave de mapa
// hace imposible duplicar la pareja (producto, bodega).
type stockKey struct {
	productID   string
	warehouseID string
}

// Store almacén en memoria para el modo de sesión única y para tests.
// Un único RWMutex serializa todas las mutaciones del ledger (la estrategia de
// lock global del diseño: volumen de escritura bajo); las lecturas toman RLock
// y por tanto ven siempre un estado consistente respecto a cualquier
// transacción en curso.
//
// Los métodos en minúscula asumen que el caller ya tiene el lock: los usan los
// repositorios públicos (lock por operación) y el TxRunner (lock por
// transacción completa).
type Store struct {
	mu sync.RWMutex

	products   map[string]entity.Product
	warehouses map[string]entity.Warehouse
	users      map[string]entity.User
	stocks     map[stockKey]entity.Stock

	movements   []entity.StockMovement // orden de creación
	movementIdx map[string]int
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:    make(map[string]entity.Product),
		warehouses:  make(map[string]entity.Warehouse),
		users:       make(map[string]entity.User),
		stocks:      make(map[stockKey]entity.Stock),
		movementIdx: make(map[string]int),
	}
}

// ── productos ────────────────────────────────────────────────────────────────

func (s *Store) getProduct(id string) *entity.Product {
	if p, ok := s.products[id]; ok {
		cp := p
		return &cp
	}
	return nil
}

func (s *Store) getProductBySKU(sku string) *entity.Product {
	for _, p := range s.products {
		if strings.EqualFold(p.SKU, sku) {
			cp := p
			return &cp
		}
	}
	return nil
}

func (s *Store) putProduct(p *entity.Product) {
	s.products[p.ID] = *p
}

func (s *Store) deleteProduct(id string) {
	delete(s.products, id)
}

func (s *Store) listProducts(limit, offset int) []*entity.Product {
	all := make([]*entity.Product, 0, len(s.products))
	for id := range s.products {
		all = append(all, s.getProduct(id))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return paginate(all, limit, offset)
}

// ── bodegas ──────────────────────────────────────────────────────────────────

func (s *Store) getWarehouse(id string) *entity.Warehouse {
	if w, ok := s.warehouses[id]; ok {
		cp := w
		return &cp
	}
	return nil
}

func (s *Store) putWarehouse(w *entity.Warehouse) {
	s.warehouses[w.ID] = *w
}

func (s *Store) deleteWarehouse(id string) {
	delete(s.warehouses, id)
}

func (s *Store) listWarehouses(limit, offset int) []*entity.Warehouse {
	all := make([]*entity.Warehouse, 0, len(s.warehouses))
	for id := range s.warehouses {
		all = append(all, s.getWarehouse(id))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return paginate(all, limit, offset)
}

// ── usuarios ─────────────────────────────────────────────────────────────────

func (s *Store) getUser(id string) *entity.User {
	if u, ok := s.users[id]; ok {
		cp := u
		return &cp
	}
	return nil
}

func (s *Store) findUserByEmail(email string) *entity.User {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			cp := u
			return &cp
		}
	}
	return nil
}

func (s *Store) putUser(u *entity.User) {
	s.users[u.ID] = *u
}

func (s *Store) listUsers(limit, offset int) []*entity.User {
	all := make([]*entity.User, 0, len(s.users))
	for id := range s.users {
		all = append(all, s.getUser(id))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return paginate(all, limit, offset)
}

// ── stock ────────────────────────────────────────────────────────────────────

func (s *Store) getStock(productID, warehouseID string) *entity.Stock {
	if st, ok := s.stocks[stockKey{productID, warehouseID}]; ok {
		cp := st
		return &cp
	}
	return nil
}

func (s *Store) putStock(st *entity.Stock) {
	s.stocks[stockKey{st.ProductID, st.WarehouseID}] = *st
}

func (s *Store) listStocks(filter func(*entity.Stock) bool) []*entity.Stock {
	var list []*entity.Stock
	for key := range s.stocks {
		st := s.getStock(key.productID, key.warehouseID)
		if filter == nil || filter(st) {
			list = append(list, st)
		}
	}
	// Mismo orden estable que el backend postgres (clave compuesta).
	sort.Slice(list, func(i, j int) bool {
		if list[i].ProductID != list[j].ProductID {
			return list[i].ProductID < list[j].ProductID
		}
		return list[i].WarehouseID < list[j].WarehouseID
	})
	return list
}

// snapshotStocks copia el estado del ledger para rollback transaccional.
func (s *Store) snapshotStocks() map[stockKey]entity.Stock {
	snap := make(map[stockKey]entity.Stock, len(s.stocks))
	for k, v := range s.stocks {
		snap[k] = v
	}
	return snap
}

func (s *Store) restoreStocks(snap map[stockKey]entity.Stock) {
	s.stocks = snap
}

// ── movimientos ──────────────────────────────────────────────────────────────

func (s *Store) appendMovement(m *entity.StockMovement) {
	s.movementIdx[m.ID] = len(s.movements)
	s.movements = append(s.movements, *m)
}

func (s *Store) getMovement(id string) *entity.StockMovement {
	if idx, ok := s.movementIdx[id]; ok {
		cp := s.movements[idx]
		return &cp
	}
	return nil
}

// setMovementStatus transiciona un movimiento no terminal; false si no existe
// o ya es terminal.
func (s *Store) setMovementStatus(id, status string, updatedAt time.Time) bool {
	idx, ok := s.movementIdx[id]
	if !ok || s.movements[idx].Terminal() {
		return false
	}
	s.movements[idx].Status = status
	s.movements[idx].UpdatedAt = updatedAt
	return true
}

func (s *Store) listMovements(filter func(*entity.StockMovement) bool) []*entity.StockMovement {
	var list []*entity.StockMovement
	for i := range s.movements {
		cp := s.movements[i]
		if filter == nil || filter(&cp) {
			list = append(list, &cp)
		}
	}
	return list
}

func (s *Store) snapshotMovementStatuses() map[string]entity.StockMovement {
	snap := make(map[string]entity.StockMovement, len(s.movements))
	for _, m := range s.movements {
		snap[m.ID] = m
	}
	return snap
}

func (s *Store) restoreMovementStatuses(snap map[string]entity.StockMovement) {
	for i := range s.movements {
		if prev, ok := snap[s.movements[i].ID]; ok {
			s.movements[i].Status = prev.Status
			s.movements[i].UpdatedAt = prev.UpdatedAt
		}
	}
}

func paginate[T any](list []*T, limit, offset int) []*T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
