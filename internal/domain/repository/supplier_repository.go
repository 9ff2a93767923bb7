package repository

import "github.com/invorya/stock-alerts/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	ListByCompany(companyID int64, limit, offset int) ([]*entity.Supplier, error)
	Delete(id int64) error

	// LinkToProduct crea o actualiza el vínculo producto-proveedor. Si isPrimary
	// es true, desmarca cualquier otro vínculo primario del producto.
	LinkToProduct(productID, supplierID int64, isPrimary bool) error
}
