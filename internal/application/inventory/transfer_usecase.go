package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/stock-ledger/internal/domain"
	"github.com/invorya/stock-ledger/internal/domain/entity"
	"github.com/invorya/stock-ledger/internal/domain/repository"
)

// TransferUseCase ejecuta traslados de stock entre bodegas de forma
// transaccional: débito en origen y crédito en destino en la misma transacción,
// con bloqueo de fila, y un registro en el log de movimientos.
type TransferUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	movementRepo  repository.StockMovementRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	movementRepo repository.StockMovementRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		movementRepo:  movementRepo,
	}
}

// TransferInput entrada para un traslado de stock (un solo salto origen→destino).
type TransferInput struct {
	ProductID              string
	Quantity               int64
	SourceWarehouseID      string
	DestinationWarehouseID string
}

// Transfer mueve Quantity unidades del producto de la bodega origen a la
// destino. Precondiciones en orden (la primera que falla gana):
//
//  1. Quantity > 0, si no ErrInvalidInput.
//  2. Origen ≠ destino, si no ErrInvalidInput.
//  3. Producto y ambas bodegas existen en el catálogo, si no ErrNotFound.
//
// Superadas las precondiciones se crea el movimiento en pending y se corre la
// transacción: débito en origen (falla con ErrInsufficientStock si no hay fila
// o la cantidad no alcanza), crédito en destino (upsert: crea la fila si el
// producto nunca estuvo en esa bodega) y transición a completed. Si el débito
// falla, el movimiento queda en failed (terminal) y ninguna bodega se muta.
func (uc *TransferUseCase) Transfer(ctx context.Context, in TransferInput) (*entity.StockMovement, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.SourceWarehouseID == in.DestinationWarehouseID {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	for _, warehouseID := range []string{in.SourceWarehouseID, in.DestinationWarehouseID} {
		warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
		if err != nil {
			return nil, err
		}
		if warehouse == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	movement := &entity.StockMovement{
		ID:                     uuid.New().String(),
		ProductID:              in.ProductID,
		Quantity:               in.Quantity,
		SourceWarehouseID:      in.SourceWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		Status:                 entity.MovementStatusPending,
		MovementDate:           now,
		UpdatedAt:              now,
	}
	// El movimiento se crea fuera de la transacción de stock: si el débito
	// falla y la transacción se revierte, el intento fallido sigue en el log.
	if err := uc.movementRepo.Create(movement); err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := uc.applyTransfer(stockRepo, in); err != nil {
			return err
		}
		completedAt := time.Now()
		if err := movementRepo.UpdateStatus(movement.ID, entity.MovementStatusCompleted, completedAt); err != nil {
			return err
		}
		movement.Status = entity.MovementStatusCompleted
		movement.UpdatedAt = completedAt
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			// Transición terminal fuera de la transacción revertida.
			failedAt := time.Now()
			if stErr := uc.movementRepo.UpdateStatus(movement.ID, entity.MovementStatusFailed, failedAt); stErr == nil {
				movement.Status = entity.MovementStatusFailed
				movement.UpdatedAt = failedAt
			}
		}
		return nil, err
	}
	return movement, nil
}

// applyTransfer debita origen y acredita destino dentro de la transacción.
// Bloquea las filas en orden fijo por warehouse id para que dos traslados
// cruzados sobre la misma pareja no se interbloqueen.
func (uc *TransferUseCase) applyTransfer(stockRepo repository.StockRepository, in TransferInput) error {
	first, second := in.SourceWarehouseID, in.DestinationWarehouseID
	if second < first {
		first, second = second, first
	}
	locked := make(map[string]*entity.Stock, 2)
	for _, warehouseID := range []string{first, second} {
		stock, err := stockRepo.GetForUpdate(in.ProductID, warehouseID)
		if err != nil {
			return err
		}
		locked[warehouseID] = stock
	}

	origin := locked[in.SourceWarehouseID]
	if origin == nil || origin.Quantity < in.Quantity {
		return domain.ErrInsufficientStock
	}

	now := time.Now()
	origin.Quantity -= in.Quantity
	origin.LastUpdated = now

	dest := locked[in.DestinationWarehouseID]
	if dest == nil {
		dest = &entity.Stock{ProductID: in.ProductID, WarehouseID: in.DestinationWarehouseID}
	}
	dest.Quantity += in.Quantity
	dest.LastUpdated = now

	if err := stockRepo.Upsert(origin); err != nil {
		return err
	}
	return stockRepo.Upsert(dest)
}
