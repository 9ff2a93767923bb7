package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryPosition representa el stock actual de un producto en una bodega,
// junto con su umbral de reorden. Única por (ProductID, WarehouseID).
type InventoryPosition struct {
	ProductID   int64
	WarehouseID int64
	Quantity    decimal.Decimal // stock actual, nunca negativo
	Threshold   decimal.Decimal // umbral de alerta; candidato cuando Quantity < Threshold (estricto)
	UpdatedAt   time.Time
}
