package repository

import (
	"time"

	"github.com/invorya/stock-alerts/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia del ledger de stock (DIP).
// El ledger es append-only; nunca se actualizan ni borran entradas.
type LedgerRepository interface {
	Append(entry *entity.LedgerEntry) error
	ListByPosition(productID, warehouseID int64, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error)
}
