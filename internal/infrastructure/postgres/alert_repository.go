package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/invorya/stock-alerts/internal/domain/entity"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

var _ repository.AlertReadRepository = (*AlertReadRepo)(nil)

// AlertReadRepo implementación de AlertReadRepository sobre PostgreSQL.
// Solo lectura; comparte el pool con el resto de repositorios.
type AlertReadRepo struct {
	q Querier
}

// NewAlertReadRepository construye el adaptador. Acepta pool o tx (Querier).
func NewAlertReadRepository(q Querier) *AlertReadRepo {
	return &AlertReadRepo{q: q}
}

// GetLowStockPositions devuelve toda posición de la empresa con
// quantity < threshold (estricto), con LEFT JOIN al proveedor primario del
// producto. Sin ORDER BY: el orden lo fija el ensamblador, no el store.
func (r *AlertReadRepo) GetLowStockPositions(ctx context.Context, companyID int64) ([]repository.LowStockPosition, error) {
	const query = `
		SELECT
			p.id,
			p.name,
			p.sku,
			w.id,
			w.name,
			ip.quantity,
			ip.threshold,
			s.id,
			s.name,
			s.contact_email
		FROM inventory_positions ip
		JOIN products   p ON p.id = ip.product_id
		JOIN warehouses w ON w.id = ip.warehouse_id
		LEFT JOIN product_suppliers ps ON ps.product_id = p.id AND ps.is_primary
		LEFT JOIN suppliers s ON s.id = ps.supplier_id
		WHERE p.company_id = $1
		  AND ip.quantity < ip.threshold`

	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("get low stock positions: %w", err)
	}
	defer rows.Close()

	var positions []repository.LowStockPosition
	for rows.Next() {
		var pos repository.LowStockPosition
		if err := rows.Scan(
			&pos.ProductID, &pos.ProductName, &pos.SKU,
			&pos.WarehouseID, &pos.WarehouseName,
			&pos.CurrentStock, &pos.Threshold,
			&pos.SupplierID, &pos.SupplierName, &pos.SupplierEmail,
		); err != nil {
			return nil, fmt.Errorf("scan low stock position: %w", err)
		}
		positions = append(positions, pos)
	}
	return positions, rows.Err()
}

// GetRecentSalesTotal suma las cantidades absolutas de entradas SALE de la
// posición desde `since`. El filtro de tipo es obligatorio: RECEIVE y
// ADJUSTMENT nunca cuentan como actividad de venta.
func (r *AlertReadRepo) GetRecentSalesTotal(ctx context.Context, productID, warehouseID int64, since time.Time) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(ABS(quantity)), 0)
		FROM stock_ledger
		WHERE product_id  = $1
		  AND warehouse_id = $2
		  AND kind = $3
		  AND created_at >= $4`

	var total decimal.Decimal
	err := r.q.QueryRow(ctx, query, productID, warehouseID, entity.LedgerKindSale, since).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("get recent sales total: %w", err)
	}
	return total, nil
}
