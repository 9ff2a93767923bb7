package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/invorya/stock-alerts/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// VelocityEstimate velocidad de venta estimada para una posición sobre la
// ventana fija. Valor transitorio: se calcula por alerta y no se persiste.
type VelocityEstimate struct {
	TotalUnitsSold   decimal.Decimal
	WindowDays       int
	AverageDailyRate decimal.Decimal // TotalUnitsSold / WindowDays; cero si no hubo ventas
}

// VelocityEstimator convierte el historial de ventas del ledger en una tasa
// diaria promedio. Promedio plano sobre la ventana, sin suavizado ni pesos por
// recencia: la métrica debe ser auditable y reproducible desde el ledger.
type VelocityEstimator struct {
	repo repository.AlertReadRepository
}

// NewVelocityEstimator construye el estimador.
func NewVelocityEstimator(repo repository.AlertReadRepository) *VelocityEstimator {
	return &VelocityEstimator{repo: repo}
}

// Estimate suma las ventas de la posición en [now - windowDays, now) y divide
// por windowDays. windowDays debe ser positivo (viene validado desde config).
func (e *VelocityEstimator) Estimate(ctx context.Context, productID, warehouseID int64, windowDays int) (VelocityEstimate, error) {
	since := time.Now().AddDate(0, 0, -windowDays)
	total, err := e.repo.GetRecentSalesTotal(ctx, productID, warehouseID, since)
	if err != nil {
		return VelocityEstimate{}, fmt.Errorf("ventas recientes producto %d bodega %d: %w", productID, warehouseID, err)
	}

	est := VelocityEstimate{
		TotalUnitsSold: total,
		WindowDays:     windowDays,
	}
	if !total.IsZero() {
		est.AverageDailyRate = total.Div(decimal.NewFromInt(int64(windowDays)))
	}
	return est, nil
}
