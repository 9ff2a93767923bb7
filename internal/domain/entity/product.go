package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario (multi-bodega).
// El stock se maneja por bodega en InventoryPosition; los proveedores via ProductSupplier.
type Product struct {
	ID          int64
	CompanyID   int64
	SKU         string // código único global
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo unitario de reposición
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
