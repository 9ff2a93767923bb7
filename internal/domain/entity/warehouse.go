package entity

import "time"

// Warehouse representa una bodega o sucursal donde se almacena inventario (multi-bodega).
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
