package dto

import "time"

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// LinkSupplierRequest body para POST /api/products/{id}/suppliers.
type LinkSupplierRequest struct {
	SupplierID int64 `json:"supplier_id"`
	IsPrimary  bool  `json:"is_primary"`
}

// SupplierResponse respuesta con un proveedor.
type SupplierResponse struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"company_id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SupplierListResponse listado paginado de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
