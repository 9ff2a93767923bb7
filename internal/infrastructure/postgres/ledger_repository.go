package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/stock-alerts/internal/domain/entity"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository sobre PostgreSQL (usable con pool o tx).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Append persiste una entrada del ledger. Asigna ID si viene vacío.
func (r *LedgerRepo) Append(entry *entity.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_ledger (id, product_id, warehouse_id, kind, quantity, reference, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	createdBy := (*string)(nil)
	if entry.CreatedBy != "" {
		createdBy = &entry.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.WarehouseID, entry.Kind,
		entry.Quantity, entry.Reference, entry.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// ListByPosition lista entradas de una posición en un rango de fechas opcional.
func (r *LedgerRepo) ListByPosition(productID, warehouseID int64, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT id, product_id, warehouse_id, kind, quantity, reference, created_at, created_by
		FROM stock_ledger WHERE product_id = $1 AND warehouse_id = $2`
	args := []any{productID, warehouseID}
	pos := 3
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at < $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		var createdBy *string
		if err := rows.Scan(&e.ID, &e.ProductID, &e.WarehouseID, &e.Kind, &e.Quantity, &e.Reference, &e.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		if createdBy != nil {
			e.CreatedBy = *createdBy
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
