package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-alerts/internal/application/inventory"
	"github.com/invorya/stock-alerts/internal/domain"
	"github.com/invorya/stock-alerts/internal/domain/entity"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

type MockProductRepo struct{ mock.Mock }

func (m *MockProductRepo) Create(p *entity.Product) error { return m.Called(p).Error(0) }
func (m *MockProductRepo) GetByID(id int64) (*entity.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}
func (m *MockProductRepo) GetByCompanyAndSKU(companyID int64, sku string) (*entity.Product, error) {
	args := m.Called(companyID, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}
func (m *MockProductRepo) Update(p *entity.Product) error { return m.Called(p).Error(0) }
func (m *MockProductRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.Product, error) {
	args := m.Called(companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}
func (m *MockProductRepo) Delete(id int64) error { return m.Called(id).Error(0) }

type MockWarehouseRepo struct{ mock.Mock }

func (m *MockWarehouseRepo) Create(w *entity.Warehouse) error { return m.Called(w).Error(0) }
func (m *MockWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Warehouse), args.Error(1)
}
func (m *MockWarehouseRepo) Update(w *entity.Warehouse) error { return m.Called(w).Error(0) }
func (m *MockWarehouseRepo) ListByCompany(companyID int64, limit, offset int) ([]*entity.Warehouse, error) {
	args := m.Called(companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Warehouse), args.Error(1)
}
func (m *MockWarehouseRepo) Delete(id int64) error { return m.Called(id).Error(0) }

type MockStockRepo struct{ mock.Mock }

func (m *MockStockRepo) Get(productID, warehouseID int64) (*entity.InventoryPosition, error) {
	args := m.Called(productID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InventoryPosition), args.Error(1)
}
func (m *MockStockRepo) Upsert(p *entity.InventoryPosition) error { return m.Called(p).Error(0) }
func (m *MockStockRepo) UpdateThreshold(productID, warehouseID int64, threshold decimal.Decimal) error {
	return m.Called(productID, warehouseID, threshold).Error(0)
}
func (m *MockStockRepo) ListByWarehouse(warehouseID int64, limit, offset int) ([]*entity.InventoryPosition, error) {
	args := m.Called(warehouseID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.InventoryPosition), args.Error(1)
}
func (m *MockStockRepo) GetForUpdate(productID, warehouseID int64) (*entity.InventoryPosition, error) {
	args := m.Called(productID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InventoryPosition), args.Error(1)
}

type MockLedgerRepo struct{ mock.Mock }

func (m *MockLedgerRepo) Append(e *entity.LedgerEntry) error { return m.Called(e).Error(0) }
func (m *MockLedgerRepo) ListByPosition(productID, warehouseID int64, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	args := m.Called(productID, warehouseID, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LedgerEntry), args.Error(1)
}

// fakeTxRunner invoca fn directamente con los mocks dados (sin tx real).
type fakeTxRunner struct {
	ledger *MockLedgerRepo
	stock  *MockStockRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.ledger, f.stock, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyID   = int64(7)
	productID   = int64(1)
	warehouseID = int64(10)
	userID      = "00000000-0000-0000-0000-000000000001"
)

func fixture(t *testing.T, stockQty string) (*inventory.RegisterEntryUseCase, *MockStockRepo, *MockLedgerRepo) {
	t.Helper()
	qty, err := decimal.NewFromString(stockQty)
	require.NoError(t, err)

	productRepo := new(MockProductRepo)
	productRepo.On("GetByID", productID).
		Return(&entity.Product{ID: productID, CompanyID: companyID, SKU: "SKU-001"}, nil)
	warehouseRepo := new(MockWarehouseRepo)
	warehouseRepo.On("GetByID", warehouseID).
		Return(&entity.Warehouse{ID: warehouseID, CompanyID: companyID}, nil)

	stockRepo := new(MockStockRepo)
	stockRepo.On("GetForUpdate", productID, warehouseID).
		Return(&entity.InventoryPosition{
			ProductID:   productID,
			WarehouseID: warehouseID,
			Quantity:    qty,
			Threshold:   decimal.NewFromInt(20),
		}, nil).Maybe()
	ledgerRepo := new(MockLedgerRepo)

	uc := inventory.NewRegisterEntryUseCase(
		&fakeTxRunner{ledger: ledgerRepo, stock: stockRepo},
		productRepo, warehouseRepo,
	)
	return uc, stockRepo, ledgerRepo
}

func entryInput(kind, qty string) inventory.EntryInput {
	q, _ := decimal.NewFromString(qty)
	return inventory.EntryInput{
		CompanyID:   companyID,
		UserID:      userID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Kind:        kind,
		Quantity:    q,
		Reference:   "orden-123",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEntry_VentaDescuentaStockYApendizaLedger(t *testing.T) {
	uc, stockRepo, ledgerRepo := fixture(t, "10")

	stockRepo.On("Upsert", mock.MatchedBy(func(p *entity.InventoryPosition) bool {
		return p.Quantity.Equal(decimal.NewFromInt(7))
	})).Return(nil)
	ledgerRepo.On("Append", mock.MatchedBy(func(e *entity.LedgerEntry) bool {
		return e.Kind == entity.LedgerKindSale &&
			e.Quantity.Equal(decimal.NewFromInt(-3)) &&
			e.CreatedBy == userID &&
			e.ID != ""
	})).Return(nil)

	err := uc.RegisterEntry(context.Background(), entryInput(entity.LedgerKindSale, "-3"))
	require.NoError(t, err)
	stockRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
}

func TestRegisterEntry_RecepcionSumaStock(t *testing.T) {
	uc, stockRepo, ledgerRepo := fixture(t, "10")

	stockRepo.On("Upsert", mock.MatchedBy(func(p *entity.InventoryPosition) bool {
		return p.Quantity.Equal(decimal.NewFromInt(25))
	})).Return(nil)
	ledgerRepo.On("Append", mock.AnythingOfType("*entity.LedgerEntry")).Return(nil)

	err := uc.RegisterEntry(context.Background(), entryInput(entity.LedgerKindReceive, "15"))
	require.NoError(t, err)
	stockRepo.AssertExpectations(t)
}

func TestRegisterEntry_VentaQueDejaNegativo_Rechazada(t *testing.T) {
	uc, stockRepo, ledgerRepo := fixture(t, "2")

	err := uc.RegisterEntry(context.Background(), entryInput(entity.LedgerKindSale, "-3"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	stockRepo.AssertNotCalled(t, "Upsert", mock.Anything)
	ledgerRepo.AssertNotCalled(t, "Append", mock.Anything)
}

func TestRegisterEntry_SignoInvalidoPorKind(t *testing.T) {
	cases := []struct {
		name string
		kind string
		qty  string
	}{
		{name: "venta con cantidad positiva", kind: entity.LedgerKindSale, qty: "3"},
		{name: "venta con cantidad cero", kind: entity.LedgerKindSale, qty: "0"},
		{name: "recepción con cantidad negativa", kind: entity.LedgerKindReceive, qty: "-3"},
		{name: "ajuste con cantidad cero", kind: entity.LedgerKindAdjustment, qty: "0"},
		{name: "kind desconocido", kind: "TRANSFER", qty: "3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, ledgerRepo := fixture(t, "10")
			err := uc.RegisterEntry(context.Background(), entryInput(tc.kind, tc.qty))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			ledgerRepo.AssertNotCalled(t, "Append", mock.Anything)
		})
	}
}

func TestRegisterEntry_AjusteNegativoValido(t *testing.T) {
	uc, stockRepo, ledgerRepo := fixture(t, "10")

	stockRepo.On("Upsert", mock.MatchedBy(func(p *entity.InventoryPosition) bool {
		return p.Quantity.Equal(decimal.NewFromInt(6))
	})).Return(nil)
	ledgerRepo.On("Append", mock.AnythingOfType("*entity.LedgerEntry")).Return(nil)

	err := uc.RegisterEntry(context.Background(), entryInput(entity.LedgerKindAdjustment, "-4"))
	require.NoError(t, err)
}

func TestRegisterEntry_ProductoDeOtraEmpresa_NotFound(t *testing.T) {
	productRepo := new(MockProductRepo)
	productRepo.On("GetByID", productID).
		Return(&entity.Product{ID: productID, CompanyID: companyID + 1}, nil)
	warehouseRepo := new(MockWarehouseRepo)
	ledgerRepo := new(MockLedgerRepo)
	stockRepo := new(MockStockRepo)

	uc := inventory.NewRegisterEntryUseCase(
		&fakeTxRunner{ledger: ledgerRepo, stock: stockRepo},
		productRepo, warehouseRepo,
	)

	err := uc.RegisterEntry(context.Background(), entryInput(entity.LedgerKindSale, "-3"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	warehouseRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}
