package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// El stock no vive aquí: se lleva por bodega en Stock. MinStockThreshold marca
// el punto a partir del cual el producto se considera con stock bajo.
type Product struct {
	ID                string
	SKU               string // código único, búsqueda case-insensitive
	Name              string
	Description       string
	Category          string
	Supplier          string
	CostPrice         decimal.Decimal
	SellingPrice      decimal.Decimal
	MinStockThreshold int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
