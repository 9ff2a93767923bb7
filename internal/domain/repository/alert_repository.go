package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockPosition resultado crudo del repositorio para una posición bajo umbral.
// Los campos Supplier* provienen de un LEFT JOIN con el proveedor primario del
// producto y pueden ser nil cuando no existe vínculo primario.
type LowStockPosition struct {
	ProductID     int64
	ProductName   string
	SKU           string
	WarehouseID   int64
	WarehouseName string
	CurrentStock  decimal.Decimal
	Threshold     decimal.Decimal
	SupplierID    *int64
	SupplierName  *string
	SupplierEmail *string
}

// AlertReadRepository define el puerto de solo lectura del pipeline de alertas (DIP).
// El pipeline nunca accede al store por fuera de estas tres operaciones.
type AlertReadRepository interface {
	// GetLowStockPositions devuelve toda posición de la empresa con stock actual
	// estrictamente menor que su umbral, cada fila con el proveedor primario si existe.
	// No se garantiza ningún orden.
	GetLowStockPositions(ctx context.Context, companyID int64) ([]LowStockPosition, error)

	// GetRecentSalesTotal devuelve la suma de cantidades absolutas de entradas
	// SALE del ledger para la posición desde `since`. 0 si no hay entradas.
	GetRecentSalesTotal(ctx context.Context, productID, warehouseID int64, since time.Time) (decimal.Decimal, error)
}
