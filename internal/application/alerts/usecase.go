package alerts

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/domain"
	"github.com/invorya/stock-alerts/internal/domain/repository"
	"github.com/invorya/stock-alerts/pkg/logger"
)

// Options parámetros del pipeline (desde config).
type Options struct {
	WindowDays     int // ventana histórica de ventas, en días
	MaxConcurrency int // tope de candidatos procesados en paralelo
}

// LowStockAlertUseCase orquesta el pipeline de alertas de stock bajo:
// selección de candidatos, estimación de velocidad, proyección de agotamiento
// y atribución de proveedor, ensamblados en un batch ordenado.
//
// Todo fallo de repositorio aborta el batch completo; nunca se devuelven
// resultados parciales.
type LowStockAlertUseCase struct {
	repo      repository.AlertReadRepository
	estimator *VelocityEstimator
	reportGen ReportGenerator
	log       *logger.Logger
	opts      Options
}

// NewLowStockAlertUseCase construye el caso de uso. reportGen puede ser nil si
// no se expone el reporte PDF.
func NewLowStockAlertUseCase(repo repository.AlertReadRepository, reportGen ReportGenerator, log *logger.Logger, opts Options) *LowStockAlertUseCase {
	if opts.WindowDays <= 0 {
		opts.WindowDays = 30
	}
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = 8
	}
	return &LowStockAlertUseCase{
		repo:      repo,
		estimator: NewVelocityEstimator(repo),
		reportGen: reportGen,
		log:       log,
		opts:      opts,
	}
}

// ParseCompanyID valida el identificador de tenant: entero positivo.
// Devuelve ErrInvalidCompanyID sin tocar el store si no parsea.
func ParseCompanyID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidCompanyID
	}
	return id, nil
}

// GetLowStockAlerts ejecuta el pipeline para una empresa y devuelve el batch.
//
// Los candidatos se procesan con paralelismo acotado (sin dependencias entre
// ellos); el batch final se reensambla en el orden original de candidatos para
// que invocaciones repetidas sobre el mismo estado del store sean idénticas.
// La cancelación del contexto aborta todas las consultas en vuelo.
func (uc *LowStockAlertUseCase) GetLowStockAlerts(ctx context.Context, companyID int64) (*dto.AlertBatchDTO, error) {
	candidates, err := uc.repo.GetLowStockPositions(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("candidatos de stock bajo empresa %d: %w", companyID, err)
	}

	batch := &dto.AlertBatchDTO{Alerts: []dto.AlertDTO{}}
	if len(candidates) == 0 {
		// Sin candidatos no es un error: batch vacío.
		return batch, nil
	}

	// Fan-out acotado: una slot por candidato, indexada para preservar el orden.
	results := make([]*dto.AlertDTO, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.opts.MaxConcurrency)

	for i, cand := range candidates {
		g.Go(func() error {
			velocity, err := uc.estimator.Estimate(gctx, cand.ProductID, cand.WarehouseID, uc.opts.WindowDays)
			if err != nil {
				return err
			}
			projection := ProjectStockout(cand.CurrentStock, velocity)
			if !projection.Included {
				// Bajo umbral pero sin ventas recientes: se suprime, no es error.
				return nil
			}
			results[i] = &dto.AlertDTO{
				ProductID:         cand.ProductID,
				ProductName:       cand.ProductName,
				SKU:               cand.SKU,
				WarehouseID:       cand.WarehouseID,
				WarehouseName:     cand.WarehouseName,
				CurrentStock:      cand.CurrentStock,
				Threshold:         cand.Threshold,
				DaysUntilStockout: projection.DaysUntilStockout,
				Supplier:          ResolveSupplier(cand),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Un candidato fallido invalida el batch completo.
		return nil, err
	}

	for _, r := range results {
		if r != nil {
			batch.Alerts = append(batch.Alerts, *r)
		}
	}
	batch.TotalAlerts = len(batch.Alerts)
	return batch, nil
}

// BuildReport genera el reporte PDF de compras para el batch de la empresa.
func (uc *LowStockAlertUseCase) BuildReport(ctx context.Context, companyID int64) ([]byte, error) {
	if uc.reportGen == nil {
		return nil, fmt.Errorf("generador de reportes no configurado")
	}
	batch, err := uc.GetLowStockAlerts(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return uc.reportGen.Generate(ctx, companyID, batch, time.Now())
}
