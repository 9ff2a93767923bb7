package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/application/inventory"
	"github.com/invorya/stock-alerts/internal/domain"
	"github.com/invorya/stock-alerts/internal/domain/entity"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock por bodega se
// maneja vía posiciones y entradas de ledger.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un nuevo producto. Si el request trae warehouse_id e
// initial_stock, el producto, su posición inicial y la entrada de apertura del
// ledger se insertan en una sola transacción (todo-o-nada).
func (uc *ProductUseCase) Create(ctx context.Context, companyID int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCompanyAndSKU(companyID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		CompanyID:   companyID,
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Cost:        in.Cost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if in.WarehouseID == nil || in.InitialStock == nil {
		if err := uc.repo.Create(product); err != nil {
			return nil, err
		}
		return toProductResponse(product), nil
	}

	if in.InitialStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	threshold := decimal.Zero
	if in.Threshold != nil {
		if in.Threshold.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		threshold = *in.Threshold
	}

	err := uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		position := &entity.InventoryPosition{
			ProductID:   product.ID,
			WarehouseID: *in.WarehouseID,
			Quantity:    *in.InitialStock,
			Threshold:   threshold,
			UpdatedAt:   now,
		}
		if err := stockRepo.Upsert(position); err != nil {
			return err
		}
		if in.InitialStock.IsZero() {
			return nil
		}
		return ledgerRepo.Append(&entity.LedgerEntry{
			ProductID:   product.ID,
			WarehouseID: *in.WarehouseID,
			Kind:        entity.LedgerKindReceive,
			Quantity:    *in.InitialStock,
			Reference:   "stock inicial",
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID validando pertenencia a la empresa.
func (uc *ProductUseCase) GetByID(companyID, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto (solo campos presentes).
func (uc *ProductUseCase) Update(companyID, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Cost != nil {
		product.Cost = *in.Cost
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos por empresa con paginación.
func (uc *ProductUseCase) List(companyID int64, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
