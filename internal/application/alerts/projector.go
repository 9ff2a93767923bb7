package alerts

import "github.com/shopspring/decimal"

// Projection resultado de proyectar el agotamiento de una posición.
// Included=false significa que la posición se suprime del batch por completo.
type Projection struct {
	Included          bool
	DaysUntilStockout int64
}

// ProjectStockout convierte stock actual + velocidad en días hasta agotamiento.
//
// Una posición bajo umbral pero sin ventas recientes se excluye del batch:
// sin movimiento no hay urgencia y se reduce el ruido de alertas. Regla de
// negocio deliberada; ver DESIGN.md por la ambigüedad con ítems de rotación
// muy lenta.
//
// El redondeo es half-away-from-zero (decimal.Round): 2.5 → 3.
// CurrentStock puede ser 0 (ya agotado) → DaysUntilStockout = 0.
func ProjectStockout(currentStock decimal.Decimal, velocity VelocityEstimate) Projection {
	if velocity.TotalUnitsSold.IsZero() {
		return Projection{Included: false}
	}
	// AverageDailyRate > 0 garantizado: TotalUnitsSold > 0 en esta rama.
	days := currentStock.Div(velocity.AverageDailyRate).Round(0).IntPart()
	return Projection{Included: true, DaysUntilStockout: days}
}
