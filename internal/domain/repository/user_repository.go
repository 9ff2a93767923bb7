package repository

import "github.com/invorya/stock-alerts/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmailAndCompany(email string, companyID int64) (*entity.User, error)
}
