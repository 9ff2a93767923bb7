package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// Si WarehouseID e InitialStock vienen definidos, se crea el producto junto con
// su posición inicial de inventario en una sola transacción.
type CreateProductRequest struct {
	SKU          string           `json:"sku"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Price        decimal.Decimal  `json:"price"`
	Cost         decimal.Decimal  `json:"cost"`
	WarehouseID  *int64           `json:"warehouse_id,omitempty"`
	InitialStock *decimal.Decimal `json:"initial_stock,omitempty"`
	Threshold    *decimal.Decimal `json:"threshold,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/{id} (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
}

// ProductResponse respuesta con un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	CompanyID   int64           `json:"company_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
