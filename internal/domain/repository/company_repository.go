package repository

import "github.com/invorya/stock-alerts/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id int64) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
}
