package repository

import (
	"github.com/invorya/stock-alerts/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StockRepository define el puerto para consultar/actualizar posiciones de inventario (DIP).
type StockRepository interface {
	Get(productID, warehouseID int64) (*entity.InventoryPosition, error)
	Upsert(position *entity.InventoryPosition) error
	UpdateThreshold(productID, warehouseID int64, threshold decimal.Decimal) error
	ListByWarehouse(warehouseID int64, limit, offset int) ([]*entity.InventoryPosition, error)

	// GetForUpdate obtiene la posición y bloquea la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(productID, warehouseID int64) (*entity.InventoryPosition, error)
}
