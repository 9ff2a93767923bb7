package repository

import "github.com/invorya/stock-alerts/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id int64) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	ListByCompany(companyID int64, limit, offset int) ([]*entity.Warehouse, error)
	Delete(id int64) error
}
