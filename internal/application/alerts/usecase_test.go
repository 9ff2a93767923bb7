package alerts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-alerts/internal/application/alerts"
	"github.com/invorya/stock-alerts/internal/domain"
	"github.com/invorya/stock-alerts/internal/domain/repository"
	"github.com/invorya/stock-alerts/pkg/logger"
)

// MockAlertReadRepository implementa el puerto de lectura para testing.
type MockAlertReadRepository struct {
	mock.Mock
}

func (m *MockAlertReadRepository) GetLowStockPositions(ctx context.Context, companyID int64) ([]repository.LowStockPosition, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.LowStockPosition), args.Error(1)
}

func (m *MockAlertReadRepository) GetRecentSalesTotal(ctx context.Context, productID, warehouseID int64, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, productID, warehouseID, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func lowStockPos(productID, warehouseID int64, stock, threshold string, supplierID *int64, supplierName, supplierEmail *string) repository.LowStockPosition {
	return repository.LowStockPosition{
		ProductID:     productID,
		ProductName:   "Producto",
		SKU:           "SKU-001",
		WarehouseID:   warehouseID,
		WarehouseName: "Bodega Central",
		CurrentStock:  dec(stock),
		Threshold:     dec(threshold),
		SupplierID:    supplierID,
		SupplierName:  supplierName,
		SupplierEmail: supplierEmail,
	}
}

func newUseCase(repo repository.AlertReadRepository) *alerts.LowStockAlertUseCase {
	log := logger.New(logger.Config{Env: "development", Level: "disabled"})
	return alerts.NewLowStockAlertUseCase(repo, nil, log, alerts.Options{WindowDays: 30, MaxConcurrency: 4})
}

func TestGetLowStockAlerts_CasoBase(t *testing.T) {
	// 5 unidades bajo umbral de 20, con 60 unidades vendidas en 30 días:
	// tasa 2/día → 2.5 días → redondea a 3.
	repo := new(MockAlertReadRepository)
	repo.On("GetLowStockPositions", mock.Anything, int64(7)).
		Return([]repository.LowStockPosition{lowStockPos(1, 10, "5", "20", nil, nil, nil)}, nil)
	repo.On("GetRecentSalesTotal", mock.Anything, int64(1), int64(10), mock.AnythingOfType("time.Time")).
		Return(dec("60"), nil)

	batch, err := newUseCase(repo).GetLowStockAlerts(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, 1, batch.TotalAlerts)

	alert := batch.Alerts[0]
	assert.Equal(t, int64(1), alert.ProductID)
	assert.Equal(t, int64(10), alert.WarehouseID)
	assert.True(t, dec("5").Equal(alert.CurrentStock))
	assert.True(t, dec("20").Equal(alert.Threshold))
	assert.Equal(t, int64(3), alert.DaysUntilStockout)
	assert.Equal(t, alerts.NoPrimarySupplierName, alert.Supplier.Name)
	assert.Nil(t, alert.Supplier.ID)
	repo.AssertExpectations(t)
}

func TestGetLowStockAlerts_SinVentasRecientes_SeSuprime(t *testing.T) {
	repo := new(MockAlertReadRepository)
	repo.On("GetLowStockPositions", mock.Anything, int64(7)).
		Return([]repository.LowStockPosition{lowStockPos(1, 10, "5", "20", nil, nil, nil)}, nil)
	repo.On("GetRecentSalesTotal", mock.Anything, int64(1), int64(10), mock.AnythingOfType("time.Time")).
		Return(decimal.Zero, nil)

	batch, err := newUseCase(repo).GetLowStockAlerts(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 0, batch.TotalAlerts)
	assert.Empty(t, batch.Alerts)
	assert.NotNil(t, batch.Alerts, "alerts debe serializar como [] y no como null")
}

func TestGetLowStockAlerts_SinCandidatos_BatchVacio(t *testing.T) {
	repo := new(MockAlertReadRepository)
	repo.On("GetLowStockPositions", mock.Anything, int64(7)).
		Return([]repository.LowStockPosition{}, nil)

	batch, err := newUseCase(repo).GetLowStockAlerts(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 0, batch.TotalAlerts)
	assert.Empty(t, batch.Alerts)
	repo.AssertNotCalled(t, "GetRecentSalesTotal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetLowStockAlerts_FalloDeCandidatos_AbortaBatch(t *testing.T) {
	repo := new(MockAlertReadRepository)
	repo.On("GetLowStockPositions", mock.Anything, int64(7)).
		Return(nil, errors.New("conexión rechazada"))

	batch, err := newUseCase(repo).GetLowStockAlerts(context.Background(), 7)
	require.Error(t, err)
	assert.Nil(t, batch, "nunca se devuelven resultados parciales")
}

func TestGetLowStockAlerts_FalloEnUnCandidato_AbortaBatchCompleto(t *testing.T) {
	// Dos candidatos: el primero resuelve bien, el segundo falla en la
	// consulta de ventas. El batch entero debe fallar, sin parciales.
	repo := new(MockAlertReadRepository)
	repo.On("GetLowStockPositions", mock.Anything, int64(7)).
		Return([]repository.LowStockPosition{
			lowStockPos(1, 10, "5", "20", nil, nil, nil),
			lowStockPos(2, 10, "8", "15", nil, nil, nil),
		}, nil)
	repo.On("GetRecentSalesTotal", mock.Anything, int64(1), int64(10), mock.AnythingOfType("time.Time")).
		Return(dec("60"), nil).Maybe()
	repo.On("GetRecentSalesTotal", mock.Anything, int64(2), int64(10), mock.AnythingOfType("time.Time")).
		Return(decimal.Zero, errors.New("timeout"))

	batch, err := newUseCase(repo).GetLowStockAlerts(context.Background(), 7)
	require.Error(t, err)
	assert.Nil(t, batch)
}

func TestGetLowStockAlerts_PreservaOrdenDeCandidatos(t *testing.T) {
	// Tres candidatos con urgencias distintas; el del medio se suprime por no
	// tener ventas. Los admitidos conservan el orden original del repositorio.
	repo := new(MockAlertReadRepository)
	repo.On("GetLowStockPositions", mock.Anything, int64(7)).
		Return([]repository.LowStockPosition{
			lowStockPos(1, 10, "5", "20", nil, nil, nil),
			lowStockPos(2, 10, "3", "20", nil, nil, nil),
			lowStockPos(3, 10, "9", "20", nil, nil, nil),
		}, nil)
	repo.On("GetRecentSalesTotal", mock.Anything, int64(1), int64(10), mock.AnythingOfType("time.Time")).
		Return(dec("30"), nil)
	repo.On("GetRecentSalesTotal", mock.Anything, int64(2), int64(10), mock.AnythingOfType("time.Time")).
		Return(decimal.Zero, nil)
	repo.On("GetRecentSalesTotal", mock.Anything, int64(3), int64(10), mock.AnythingOfType("time.Time")).
		Return(dec("90"), nil)

	batch, err := newUseCase(repo).GetLowStockAlerts(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, 2, batch.TotalAlerts)
	assert.Equal(t, int64(1), batch.Alerts[0].ProductID)
	assert.Equal(t, int64(3), batch.Alerts[1].ProductID)
}

func TestGetLowStockAlerts_ProveedorPrimario(t *testing.T) {
	supplierID := int64(42)
	supplierName := "Distribuidora Norte"
	supplierEmail := "compras@norte.example"

	repo := new(MockAlertReadRepository)
	repo.On("GetLowStockPositions", mock.Anything, int64(7)).
		Return([]repository.LowStockPosition{
			lowStockPos(1, 10, "5", "20", &supplierID, &supplierName, &supplierEmail),
		}, nil)
	repo.On("GetRecentSalesTotal", mock.Anything, int64(1), int64(10), mock.AnythingOfType("time.Time")).
		Return(dec("60"), nil)

	batch, err := newUseCase(repo).GetLowStockAlerts(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, 1, batch.TotalAlerts)
	assert.Equal(t, &supplierID, batch.Alerts[0].Supplier.ID)
	assert.Equal(t, supplierName, batch.Alerts[0].Supplier.Name)
	assert.Equal(t, &supplierEmail, batch.Alerts[0].Supplier.ContactEmail)
}

func TestParseCompanyID(t *testing.T) {
	cases := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "7", want: 7},
		{raw: "123456", want: 123456},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "3.5", wantErr: true},
	}
	for _, tc := range cases {
		t.Run("id="+tc.raw, func(t *testing.T) {
			got, err := alerts.ParseCompanyID(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidCompanyID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestVelocityEstimator_TasaPromedio(t *testing.T) {
	repo := new(MockAlertReadRepository)
	repo.On("GetRecentSalesTotal", mock.Anything, int64(1), int64(10), mock.AnythingOfType("time.Time")).
		Return(dec("60"), nil)

	est, err := alerts.NewVelocityEstimator(repo).Estimate(context.Background(), 1, 10, 30)
	require.NoError(t, err)
	assert.True(t, dec("60").Equal(est.TotalUnitsSold))
	assert.Equal(t, 30, est.WindowDays)
	assert.True(t, dec("2").Equal(est.AverageDailyRate))
}

func TestVelocityEstimator_VentanaCorrecta(t *testing.T) {
	// El límite inferior de la ventana debe ser ahora - windowDays días.
	repo := new(MockAlertReadRepository)
	var captured time.Time
	repo.On("GetRecentSalesTotal", mock.Anything, int64(1), int64(10), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			captured = args.Get(3).(time.Time)
		}).
		Return(decimal.Zero, nil)

	_, err := alerts.NewVelocityEstimator(repo).Estimate(context.Background(), 1, 10, 30)
	require.NoError(t, err)

	expected := time.Now().AddDate(0, 0, -30)
	assert.WithinDuration(t, expected, captured, 5*time.Second)
}
