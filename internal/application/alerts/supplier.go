package alerts

import (
	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

// NoPrimarySupplierName nombre del sentinel cuando el producto no tiene
// proveedor primario. El campo supplier nunca se omite en la respuesta.
const NoPrimarySupplierName = "No Primary Supplier"

// ResolveSupplier devuelve el proveedor primario que trajo el LEFT JOIN, o el
// sentinel explícito si no hay vínculo primario. Si el store llegara a tener
// más de una fila primaria por producto (violación de integridad), se toma la
// primera que devolvió el repositorio sin intentar repararlo.
func ResolveSupplier(pos repository.LowStockPosition) dto.SupplierRefDTO {
	if pos.SupplierID == nil {
		return dto.SupplierRefDTO{ID: nil, Name: NoPrimarySupplierName, ContactEmail: nil}
	}
	ref := dto.SupplierRefDTO{ID: pos.SupplierID, ContactEmail: pos.SupplierEmail}
	if pos.SupplierName != nil {
		ref.Name = *pos.SupplierName
	}
	return ref
}
