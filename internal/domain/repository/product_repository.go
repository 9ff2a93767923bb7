package repository

import "github.com/invorya/stock-alerts/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByCompanyAndSKU(companyID int64, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByCompany(companyID int64, limit, offset int) ([]*entity.Product, error)
	Delete(id int64) error
}
