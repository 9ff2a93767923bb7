package usecase

import (
	"time"

	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/domain"
	"github.com/invorya/stock-alerts/internal/domain/entity"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores y sus vínculos con productos.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo}
}

// Create crea un nuevo proveedor.
func (uc *SupplierUseCase) Create(companyID int64, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		CompanyID:    companyID,
		Name:         in.Name,
		ContactEmail: in.ContactEmail,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores por empresa con paginación.
func (uc *SupplierUseCase) List(companyID int64, limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// LinkToProduct vincula un proveedor a un producto de la misma empresa.
// Marcarlo primario desmarca cualquier otro vínculo primario del producto.
func (uc *SupplierUseCase) LinkToProduct(companyID, productID int64, in dto.LinkSupplierRequest) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || product.CompanyID != companyID {
		return domain.ErrNotFound
	}
	supplier, err := uc.repo.GetByID(in.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.LinkToProduct(productID, in.SupplierID, in.IsPrimary)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		Phone:        s.Phone,
		CreatedAt:    s.CreatedAt,
	}
}
