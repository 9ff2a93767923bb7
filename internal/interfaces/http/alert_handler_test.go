package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-alerts/internal/application/alerts"
	"github.com/invorya/stock-alerts/internal/domain/repository"
	apphttp "github.com/invorya/stock-alerts/internal/interfaces/http"
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

// buildAlertApp monta solo la ruta de alertas con el repositorio dado.
func buildAlertApp(repo repository.AlertReadRepository) *fiber.App {
	log := logger.New(logger.Config{Env: "development", Level: "disabled"})
	uc := alerts.NewLowStockAlertUseCase(repo, nil, log, alerts.Options{WindowDays: 30, MaxConcurrency: 4})
	handler := apphttp.NewAlertHandler(uc, log)

	app := fiber.New()
	app.Get("/api/companies/:companyId/alerts/low-stock", handler.GetLowStock)
	return app
}

func getAlerts(t *testing.T, app *fiber.App, companyID string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/companies/"+companyID+"/alerts/low-stock", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGetLowStock_CompanyIDNoNumerico_Retorna400SinTocarStore(t *testing.T) {
	repo := new(MockAlertReadRepository)
	app := buildAlertApp(repo)

	resp := getAlerts(t, app, "abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "company id inválido")

	// La validación del tenant es puramente sintáctica: cero lecturas al store.
	repo.AssertNotCalled(t, "GetLowStockPositions", mock.Anything, mock.Anything)
}

func TestGetLowStock_IDNegativo_Retorna400(t *testing.T) {
	repo := new(MockAlertReadRepository)
	app := buildAlertApp(repo)

	resp := getAlerts(t, app, "-5")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	repo.AssertNotCalled(t, "GetLowStockPositions", mock.Anything, mock.Anything)
}

func TestGetLowStock_SinCandidatos_Retorna200BatchVacio(t *testing.T) {
	repo := new(MockAlertReadRepository)
	repo.On("GetLowStockPositions", mock.Anything, int64(7)).
		Return([]repository.LowStockPosition{}, nil)
	app := buildAlertApp(repo)

	resp := getAlerts(t, app, "7")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"alerts": [], "total_alerts": 0}`, string(raw),
		"empresa sin alertas responde batch vacío, no error")
}

func TestGetLowStock_ConAlertas_Retorna200ConShapeCompleto(t *testing.T) {
	supplierID := int64(42)
	supplierName := "Distribuidora Norte"
	repo := new(MockAlertReadRepository)
	repo.On("GetLowStockPositions", mock.Anything, int64(7)).
		Return([]repository.LowStockPosition{{
			ProductID:     1,
			ProductName:   "Tornillo M4",
			SKU:           "TOR-M4",
			WarehouseID:   10,
			WarehouseName: "Bodega Central",
			CurrentStock:  decimal.NewFromInt(5),
			Threshold:     decimal.NewFromInt(20),
			SupplierID:    &supplierID,
			SupplierName:  &supplierName,
		}}, nil)
	repo.On("GetRecentSalesTotal", mock.Anything, int64(1), int64(10), mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(60), nil)
	app := buildAlertApp(repo)

	resp := getAlerts(t, app, "7")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Alerts []struct {
			ProductID         int64  `json:"product_id"`
			SKU               string `json:"sku"`
			DaysUntilStockout int64  `json:"days_until_stockout"`
			Supplier          struct {
				ID           *int64  `json:"id"`
				Name         string  `json:"name"`
				ContactEmail *string `json:"contact_email"`
			} `json:"supplier"`
		} `json:"alerts"`
		TotalAlerts int `json:"total_alerts"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 1, body.TotalAlerts)
	assert.Equal(t, int64(1), body.Alerts[0].ProductID)
	assert.Equal(t, "TOR-M4", body.Alerts[0].SKU)
	assert.Equal(t, int64(3), body.Alerts[0].DaysUntilStockout)
	assert.Equal(t, &supplierID, body.Alerts[0].Supplier.ID)
	assert.Equal(t, supplierName, body.Alerts[0].Supplier.Name)
	assert.Nil(t, body.Alerts[0].Supplier.ContactEmail)
}

func TestGetLowStock_FalloDeStore_Retorna500Generico(t *testing.T) {
	repo := new(MockAlertReadRepository)
	repo.On("GetLowStockPositions", mock.Anything, int64(7)).
		Return(nil, errors.New("pq: connection refused host=10.0.0.5"))
	app := buildAlertApp(repo)

	resp := getAlerts(t, app, "7")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "error interno")
	assert.NotContains(t, string(raw), "10.0.0.5",
		"el detalle del store no debe filtrarse al cliente")
}
