package entity

import "time"

// Estados de un traslado de stock. El log es append-only: un movimiento nunca
// se borra ni se reabre después de llegar a un estado terminal.
const (
	MovementStatusPending   = "pending"
	MovementStatusInTransit = "in_transit"
	MovementStatusCompleted = "completed" // ambos lados del ledger actualizados
	MovementStatusFailed    = "failed"    // terminal: el débito en origen no se aplicó
)

// StockMovement representa un traslado de stock entre dos bodegas.
// Se crea en pending al iniciar el intento y pasa a completed solo después de
// que el débito en origen y el crédito en destino se aplicaron en la misma
// transacción. Source y Destination nunca son iguales.
type StockMovement struct {
	ID                     string
	ProductID              string
	Quantity               int64
	SourceWarehouseID      string
	DestinationWarehouseID string
	Status                 string
	MovementDate           time.Time
	UpdatedAt              time.Time
}

// Terminal indica si el movimiento ya no admite transiciones de estado.
func (m *StockMovement) Terminal() bool {
	return m.Status == MovementStatusCompleted || m.Status == MovementStatusFailed
}
