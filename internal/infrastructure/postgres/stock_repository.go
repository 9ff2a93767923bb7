package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/invorya/stock-alerts/internal/domain/entity"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la posición de un producto en una bodega. Si no existe fila,
// devuelve una posición en cero (no un error).
func (r *StockRepo) Get(productID, warehouseID int64) (*entity.InventoryPosition, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, threshold, updated_at
		FROM inventory_positions WHERE product_id = $1 AND warehouse_id = $2`
	var p entity.InventoryPosition
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&p.ProductID, &p.WarehouseID, &p.Quantity, &p.Threshold, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryPosition{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero, Threshold: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get position: %w", err)
	}
	return &p, nil
}

// Upsert inserta o actualiza la posición (única por producto y bodega).
func (r *StockRepo) Upsert(position *entity.InventoryPosition) error {
	query := `
		INSERT INTO inventory_positions (product_id, warehouse_id, quantity, threshold, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, threshold = EXCLUDED.threshold, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		position.ProductID, position.WarehouseID, position.Quantity, position.Threshold,
	)
	if err != nil {
		return fmt.Errorf("upsert position: %w", err)
	}
	return nil
}

// UpdateThreshold cambia solo el umbral de alerta de la posición.
func (r *StockRepo) UpdateThreshold(productID, warehouseID int64, threshold decimal.Decimal) error {
	query := `
		UPDATE inventory_positions SET threshold = $3, updated_at = now()
		WHERE product_id = $1 AND warehouse_id = $2`
	tag, err := r.q.Exec(context.Background(), query, productID, warehouseID, threshold)
	if err != nil {
		return fmt.Errorf("update threshold: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update threshold: posición %d/%d no existe", productID, warehouseID)
	}
	return nil
}

// ListByWarehouse lista posiciones de una bodega con paginación.
func (r *StockRepo) ListByWarehouse(warehouseID int64, limit, offset int) ([]*entity.InventoryPosition, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, threshold, updated_at
		FROM inventory_positions WHERE warehouse_id = $1
		ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryPosition
	for rows.Next() {
		var p entity.InventoryPosition
		if err := rows.Scan(&p.ProductID, &p.WarehouseID, &p.Quantity, &p.Threshold, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetForUpdate obtiene la posición y bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productID, warehouseID int64) (*entity.InventoryPosition, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, threshold, updated_at
		FROM inventory_positions WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var p entity.InventoryPosition
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&p.ProductID, &p.WarehouseID, &p.Quantity, &p.Threshold, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryPosition{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero, Threshold: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get position for update: %w", err)
	}
	return &p, nil
}
