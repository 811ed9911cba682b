package memory

import (
	"context"

	"github.com/invorya/stock-ledger/internal/application/inventory"
	"github.com/invorya/stock-ledger/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks como una sección crítica sobre el almacén en
// memoria: toma el lock de escritura durante toda la transacción, con lo que
// ningún lector u otro escritor observa estado intermedio. Si fn devuelve
// error, el estado de stock y los estados de movimientos tocados dentro de la
// transacción se restauran (rollback).
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén compartido.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn bajo el lock global con repos sin lock propio (la transacción
// entera ya lo tiene) y revierte las mutaciones si fn falla.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stockSnap := r.store.snapshotStocks()
	movementSnap := r.store.snapshotMovementStatuses()

	stockRepo := &StockRepo{store: r.store, locked: true}
	movementRepo := &StockMovementRepo{store: r.store, locked: true}

	if err := fn(stockRepo, movementRepo); err != nil {
		r.store.restoreStocks(stockSnap)
		r.store.restoreMovementStatuses(movementSnap)
		return err
	}
	return nil
}
