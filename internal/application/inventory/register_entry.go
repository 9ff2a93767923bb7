package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/stock-alerts/internal/domain"
	"github.com/invorya/stock-alerts/internal/domain/entity"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

// RegisterEntryUseCase registra entradas del ledger de stock de forma
// transaccional (SALE, RECEIVE, ADJUSTMENT) con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback. La posición de inventario se
// actualiza en la misma transacción que persiste la entrada.
type RegisterEntryUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewRegisterEntryUseCase construye el caso de uso.
func NewRegisterEntryUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *RegisterEntryUseCase {
	return &RegisterEntryUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// EntryInput entrada para registrar un cambio de stock.
// Quantity lleva signo: SALE exige negativo, RECEIVE positivo, ADJUSTMENT
// cualquier valor distinto de cero.
type EntryInput struct {
	CompanyID   int64
	UserID      string
	ProductID   int64
	WarehouseID int64
	Kind        string
	Quantity    decimal.Decimal
	Reference   string
}

// RegisterEntry valida la entrada, verifica pertenencia a la empresa, bloquea
// la posición y aplica el delta. El stock nunca queda negativo
// (ErrInsufficientStock y rollback si el delta lo dejaría bajo cero).
func (uc *RegisterEntryUseCase) RegisterEntry(ctx context.Context, input EntryInput) error {
	switch input.Kind {
	case entity.LedgerKindSale:
		if !input.Quantity.IsNegative() {
			return domain.ErrInvalidInput
		}
	case entity.LedgerKindReceive:
		if !input.Quantity.IsPositive() {
			return domain.ErrInvalidInput
		}
	case entity.LedgerKindAdjustment:
		if input.Quantity.IsZero() {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil || product.CompanyID != input.CompanyID {
		return domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(input.WarehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil || warehouse.CompanyID != input.CompanyID {
		return domain.ErrNotFound
	}

	return uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		position, err := stockRepo.GetForUpdate(input.ProductID, input.WarehouseID)
		if err != nil {
			return err
		}
		newQty := position.Quantity.Add(input.Quantity)
		if newQty.IsNegative() {
			return domain.ErrInsufficientStock
		}

		position.Quantity = newQty
		position.UpdatedAt = time.Now()
		if err := stockRepo.Upsert(position); err != nil {
			return err
		}

		entry := &entity.LedgerEntry{
			ID:          uuid.New().String(),
			ProductID:   input.ProductID,
			WarehouseID: input.WarehouseID,
			Kind:        input.Kind,
			Quantity:    input.Quantity,
			Reference:   input.Reference,
			CreatedAt:   time.Now(),
			CreatedBy:   input.UserID,
		}
		return ledgerRepo.Append(entry)
	})
}
