package memory

import (
	"github.com/invorya/stock-ledger/internal/domain"
	"github.com/invorya/stock-ledger/internal/domain/entity"
	"github.com/invorya/stock-ledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)
var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// ProductRepo adaptador en memoria del puerto ProductRepository.
type ProductRepo struct {
	store *Store
}

// NewProductRepository construye el adaptador sobre el almacén compartido.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

// Create persiste un nuevo producto; ErrDuplicate si el SKU ya existe.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.getProductBySKU(product.SKU) != nil {
		return domain.ErrDuplicate
	}
	r.store.putProduct(product)
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.getProduct(id), nil
}

// GetBySKU obtiene un producto por SKU, case-insensitive.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.getProductBySKU(sku), nil
}

// Update reemplaza el producto existente; ErrDuplicate si el SKU ya pertenece
// a otro producto (equivale al índice único de postgres).
func (r *ProductRepo) Update(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.getProduct(product.ID) == nil {
		return domain.ErrNotFound
	}
	if other := r.store.getProductBySKU(product.SKU); other != nil && other.ID != product.ID {
		return domain.ErrDuplicate
	}
	r.store.putProduct(product)
	return nil
}

// List lista productos en orden de creación con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.listProducts(limit, offset), nil
}

// Delete elimina un producto por ID. Sin chequeo en cascada contra stock.
func (r *ProductRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.deleteProduct(id)
	return nil
}

// WarehouseRepo adaptador en memoria del puerto WarehouseRepository.
type WarehouseRepo struct {
	store *Store
}

// NewWarehouseRepository construye el adaptador sobre el almacén compartido.
func NewWarehouseRepository(store *Store) *WarehouseRepo {
	return &WarehouseRepo{store: store}
}

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.putWarehouse(warehouse)
	return nil
}

// GetByID obtiene una bodega por ID; (nil, nil) si no existe.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.getWarehouse(id), nil
}

// Update reemplaza la bodega existente.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.getWarehouse(warehouse.ID) == nil {
		return domain.ErrNotFound
	}
	r.store.putWarehouse(warehouse)
	return nil
}

// List lista bodegas en orden de creación con paginación.
func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.listWarehouses(limit, offset), nil
}

// Delete elimina una bodega por ID. El stock que la referencie queda huérfano
// y se reporta como error de integridad en las consultas con detalle.
func (r *WarehouseRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.deleteWarehouse(id)
	return nil
}
