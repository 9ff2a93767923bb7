package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de entrada del ledger de stock. El pipeline de alertas solo lee SALE.
const (
	LedgerKindSale       = "SALE"
	LedgerKindReceive    = "RECEIVE"
	LedgerKindAdjustment = "ADJUSTMENT"
)

// LedgerEntry representa un cambio histórico de stock para una posición
// (producto, bodega). Append-only; Quantity lleva signo (negativo en ventas).
type LedgerEntry struct {
	ID          string // uuid
	ProductID   int64
	WarehouseID int64
	Kind        string // SALE, RECEIVE, ADJUSTMENT
	Quantity    decimal.Decimal
	Reference   string // factura, orden de compra, nota de ajuste, etc.
	CreatedAt   time.Time
	CreatedBy   string // UserID
}
