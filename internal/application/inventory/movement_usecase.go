package inventory

import (
	"time"

	"github.com/invorya/stock-ledger/internal/application/dto"
	"github.com/invorya/stock-ledger/internal/domain/entity"
	"github.com/invorya/stock-ledger/internal/domain/repository"
)

// MovementUseCase lecturas sobre el log de traslados.
type MovementUseCase struct {
	movementRepo  repository.StockMovementRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *MovementUseCase {
	return &MovementUseCase{
		movementRepo:  movementRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// List devuelve todos los movimientos en orden de creación.
func (uc *MovementUseCase) List() ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return items, nil
}

// ListByProduct movimientos de un producto, con rango de fechas opcional.
func (uc *MovementUseCase) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return items, nil
}

// ListByWarehouse movimientos que tocan una bodega (como origen o destino).
func (uc *MovementUseCase) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.ListByWarehouse(warehouseID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return items, nil
}

// ListWithDetails movimientos con producto y bodegas resueltos. Las
// referencias rotas se dejan con el detalle en cero en lugar de fallar: el log
// es histórico y puede apuntar a registros ya borrados del catálogo.
func (uc *MovementUseCase) ListWithDetails() ([]dto.MovementWithDetailsResponse, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementWithDetailsResponse, 0, len(movements))
	for _, m := range movements {
		item := dto.MovementWithDetailsResponse{MovementResponse: *toMovementResponse(m)}
		if product, err := uc.productRepo.GetByID(m.ProductID); err == nil && product != nil {
			item.Product = *toProductDetails(product)
		}
		if source, err := uc.warehouseRepo.GetByID(m.SourceWarehouseID); err == nil && source != nil {
			item.SourceWarehouse = *toWarehouseDetails(source)
		}
		if dest, err := uc.warehouseRepo.GetByID(m.DestinationWarehouseID); err == nil && dest != nil {
			item.DestinationWarehouse = *toWarehouseDetails(dest)
		}
		items = append(items, item)
	}
	return items, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:                     m.ID,
		ProductID:              m.ProductID,
		Quantity:               m.Quantity,
		SourceWarehouseID:      m.SourceWarehouseID,
		DestinationWarehouseID: m.DestinationWarehouseID,
		Status:                 m.Status,
		MovementDate:           m.MovementDate,
		UpdatedAt:              m.UpdatedAt,
	}
}
