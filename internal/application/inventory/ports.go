package inventory

import (
	"context"

	"github.com/invorya/stock-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando
// repositorios atados a esa transacción. Garantiza atomicidad para el traslado:
// o ambos lados del ledger se mueven y el movimiento queda completed, o ninguna
// mutación es visible para otros lectores.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
