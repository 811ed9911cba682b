package inventory

import (
	"fmt"
	"time"

	"github.com/invorya/stock-ledger/internal/application/dto"
	"github.com/invorya/stock-ledger/internal/domain"
	"github.com/invorya/stock-ledger/internal/domain/entity"
	"github.com/invorya/stock-ledger/internal/domain/repository"
)

// StockUseCase lecturas del ledger y sobrescritura directa de cantidad.
// Las vistas con detalle (producto + bodega resueltos) se componen aquí y
// nunca se persisten.
type StockUseCase struct {
	stockRepo     repository.StockRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *StockUseCase {
	return &StockUseCase{
		stockRepo:     stockRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// SetQuantity sobrescribe la cantidad de una fila existente (override admin).
// Falla con ErrInvalidInput si quantity < 0 y con ErrNotFound si la pareja
// (producto, bodega) no tiene fila. No crea filas: eso es cosa del traslado.
func (uc *StockUseCase) SetQuantity(productID, warehouseID string, quantity int64) (*dto.StockResponse, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	stock, err := uc.stockRepo.Get(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	stock.Quantity = quantity
	stock.LastUpdated = time.Now()
	if err := uc.stockRepo.Upsert(stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// ListStocks devuelve todas las filas de stock sin resolver referencias.
func (uc *StockUseCase) ListStocks() ([]dto.StockResponse, error) {
	stocks, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(stocks))
	for _, s := range stocks {
		items = append(items, *toStockResponse(s))
	}
	return items, nil
}

// ListStocksWithDetails une cada fila de stock con su producto y bodega.
// Una referencia rota (producto o bodega borrados con stock vivo) no tumba el
// proceso: se reporta como ErrDataIntegrity.
func (uc *StockUseCase) ListStocksWithDetails() ([]dto.StockWithDetailsResponse, error) {
	stocks, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	return uc.resolveDetails(stocks, false)
}

// ListStocksByWarehouse vistas con detalle filtradas por bodega.
func (uc *StockUseCase) ListStocksByWarehouse(warehouseID string) ([]dto.StockWithDetailsResponse, error) {
	stocks, err := uc.stockRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return uc.resolveDetails(stocks, false)
}

// ListStocksByProduct vistas con detalle filtradas por producto.
func (uc *StockUseCase) ListStocksByProduct(productID string) ([]dto.StockWithDetailsResponse, error) {
	stocks, err := uc.stockRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return uc.resolveDetails(stocks, false)
}

// ListLowStockItems filtra las vistas con detalle donde la cantidad es menor o
// igual al umbral mínimo del producto (el límite cuenta como stock bajo).
// Las filas con referencias rotas se omiten en lugar de fallar.
func (uc *StockUseCase) ListLowStockItems() ([]dto.StockWithDetailsResponse, error) {
	stocks, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	details, err := uc.resolveDetails(stocks, true)
	if err != nil {
		return nil, err
	}
	low := make([]dto.StockWithDetailsResponse, 0, len(details))
	for _, d := range details {
		if d.Quantity <= d.Product.MinStockThreshold {
			low = append(low, d)
		}
	}
	return low, nil
}

// resolveDetails compone StockWithDetails. Con skipOrphans las filas con
// referencias rotas se descartan; si no, producen ErrDataIntegrity.
func (uc *StockUseCase) resolveDetails(stocks []*entity.Stock, skipOrphans bool) ([]dto.StockWithDetailsResponse, error) {
	items := make([]dto.StockWithDetailsResponse, 0, len(stocks))
	for _, s := range stocks {
		product, err := uc.productRepo.GetByID(s.ProductID)
		if err != nil {
			return nil, err
		}
		warehouse, err := uc.warehouseRepo.GetByID(s.WarehouseID)
		if err != nil {
			return nil, err
		}
		if product == nil || warehouse == nil {
			if skipOrphans {
				continue
			}
			return nil, fmt.Errorf("%w: stock de producto %s en bodega %s sin referente",
				domain.ErrDataIntegrity, s.ProductID, s.WarehouseID)
		}
		items = append(items, dto.StockWithDetailsResponse{
			StockResponse: *toStockResponse(s),
			Product:       *toProductDetails(product),
			Warehouse:     *toWarehouseDetails(warehouse),
		})
	}
	return items, nil
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	if s == nil {
		return nil
	}
	return &dto.StockResponse{
		ProductID:   s.ProductID,
		WarehouseID: s.WarehouseID,
		Quantity:    s.Quantity,
		LastUpdated: s.LastUpdated,
	}
}

func toProductDetails(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Description:       p.Description,
		Category:          p.Category,
		Supplier:          p.Supplier,
		CostPrice:         p.CostPrice,
		SellingPrice:      p.SellingPrice,
		MinStockThreshold: p.MinStockThreshold,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toWarehouseDetails(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Location:  w.Location,
		Capacity:  w.Capacity,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
