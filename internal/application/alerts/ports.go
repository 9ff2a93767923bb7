package alerts

import (
	"context"
	"time"

	"github.com/invorya/stock-alerts/internal/application/dto"
)

// ReportGenerator renderiza un batch de alertas como reporte de compras (PDF).
// La implementación vive en infrastructure.
type ReportGenerator interface {
	Generate(ctx context.Context, companyID int64, batch *dto.AlertBatchDTO, generatedAt time.Time) ([]byte, error)
}
