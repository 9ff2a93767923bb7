package entity

import "time"

// Supplier representa un proveedor de la empresa.
type Supplier struct {
	ID           int64
	CompanyID    int64
	Name         string
	ContactEmail string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductSupplier vincula un producto con un proveedor. A lo sumo una fila
// por producto lleva IsPrimary=true (invariante del store, no se repara aquí).
type ProductSupplier struct {
	ProductID  int64
	SupplierID int64
	IsPrimary  bool
	CreatedAt  time.Time
}
