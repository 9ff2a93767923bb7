package dto

import "github.com/shopspring/decimal"

// SupplierRefDTO identifica al proveedor primario de un producto en una alerta.
// Cuando el producto no tiene proveedor primario se emite el sentinel explícito
// {id: null, name: "No Primary Supplier", contact_email: null}; nunca se omite el campo.
type SupplierRefDTO struct {
	ID           *int64  `json:"id"`
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// AlertDTO una alerta de stock bajo para una posición (producto, bodega).
type AlertDTO struct {
	ProductID          int64           `json:"product_id"`
	ProductName        string          `json:"product_name"`
	SKU                string          `json:"sku"`
	WarehouseID        int64           `json:"warehouse_id"`
	WarehouseName      string          `json:"warehouse_name"`
	CurrentStock       decimal.Decimal `json:"current_stock"`
	Threshold          decimal.Decimal `json:"threshold"`
	DaysUntilStockout  int64           `json:"days_until_stockout"` // 0 cuando ya está agotado
	Supplier           SupplierRefDTO  `json:"supplier"`
}

// AlertBatchDTO respuesta completa del endpoint de alertas.
// Alerts mantiene el orden original de los candidatos admitidos.
type AlertBatchDTO struct {
	Alerts      []AlertDTO `json:"alerts"`
	TotalAlerts int        `json:"total_alerts"`
}
