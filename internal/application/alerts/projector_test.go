package alerts_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/invorya/stock-alerts/internal/application/alerts"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func velocity(totalSold string, windowDays int) alerts.VelocityEstimate {
	total := dec(totalSold)
	est := alerts.VelocityEstimate{TotalUnitsSold: total, WindowDays: windowDays}
	if !total.IsZero() {
		est.AverageDailyRate = total.Div(decimal.NewFromInt(int64(windowDays)))
	}
	return est
}

func TestProjectStockout(t *testing.T) {
	cases := []struct {
		name         string
		stock        string
		totalSold    string
		windowDays   int
		wantIncluded bool
		wantDays     int64
	}{
		{
			name:  "caso base: 5 unidades, 60 vendidas en 30 días → 3 días",
			stock: "5", totalSold: "60", windowDays: 30,
			wantIncluded: true, wantDays: 3, // tasa 2/día, 5/2 = 2.5 → 3
		},
		{
			name:  "redondeo hacia abajo: 12 unidades a 5/día → 2 días",
			stock: "12", totalSold: "150", windowDays: 30,
			wantIncluded: true, wantDays: 2, // 12/5 = 2.4 → 2
		},
		{
			name:  "mitad exacta redondea alejándose de cero: 2.5 → 3",
			stock: "7.5", totalSold: "90", windowDays: 30,
			wantIncluded: true, wantDays: 3, // tasa 3/día, 7.5/3 = 2.5 → 3
		},
		{
			name:  "stock cero: ya agotado → 0 días, incluido",
			stock: "0", totalSold: "30", windowDays: 30,
			wantIncluded: true, wantDays: 0,
		},
		{
			name:  "sin ventas recientes: se suprime del batch",
			stock: "5", totalSold: "0", windowDays: 30,
			wantIncluded: false,
		},
		{
			name:  "rotación lenta pero no nula: sigue incluido",
			stock: "3", totalSold: "1", windowDays: 30,
			wantIncluded: true, wantDays: 90, // tasa 1/30, 3/(1/30) = 90
		},
		{
			name:  "cantidades fraccionarias",
			stock: "2.5", totalSold: "15", windowDays: 30,
			wantIncluded: true, wantDays: 5, // tasa 0.5/día
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := alerts.ProjectStockout(dec(tc.stock), velocity(tc.totalSold, tc.windowDays))
			assert.Equal(t, tc.wantIncluded, got.Included)
			if tc.wantIncluded {
				assert.Equal(t, tc.wantDays, got.DaysUntilStockout)
			}
		})
	}
}

func TestResolveSupplier_SinPrimario_EmiteSentinel(t *testing.T) {
	ref := alerts.ResolveSupplier(lowStockPos(1, 1, "5", "20", nil, nil, nil))

	assert.Nil(t, ref.ID)
	assert.Equal(t, alerts.NoPrimarySupplierName, ref.Name)
	assert.Nil(t, ref.ContactEmail)
}

func TestResolveSupplier_ConPrimario(t *testing.T) {
	id := int64(42)
	name := "Distribuidora Norte"
	email := "compras@norte.example"
	ref := alerts.ResolveSupplier(lowStockPos(1, 1, "5", "20", &id, &name, &email))

	assert.Equal(t, &id, ref.ID)
	assert.Equal(t, name, ref.Name)
	assert.Equal(t, &email, ref.ContactEmail)
}
