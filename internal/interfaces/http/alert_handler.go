package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stock-alerts/internal/application/alerts"
	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/domain"
	"github.com/invorya/stock-alerts/pkg/logger"
)

// AlertHandler maneja las peticiones HTTP del pipeline de alertas de stock bajo.
type AlertHandler struct {
	uc  *alerts.LowStockAlertUseCase
	log *logger.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.LowStockAlertUseCase, log *logger.Logger) *AlertHandler {
	return &AlertHandler{uc: uc, log: log}
}

// GetLowStock godoc
// @Summary      Alertas de stock bajo para una empresa
// @Description  Posiciones bajo umbral con ventas recientes, rankeadas por días hasta agotamiento.
// @Tags         alerts
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa (entero positivo)"
// @Success      200  {object}  dto.AlertBatchDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStock(c *fiber.Ctx) error {
	companyID, err := alerts.ParseCompanyID(c.Params("companyId"))
	if err != nil {
		// Validación pura: no se tocó el store.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "company id inválido: debe ser un entero positivo"})
	}

	batch, err := h.uc.GetLowStockAlerts(c.Context(), companyID)
	if err != nil {
		return h.internalError(c, companyID, err)
	}
	return c.JSON(batch)
}

// GetLowStockReport godoc
// @Summary      Reporte PDF de reposición
// @Description  El mismo batch de alertas, renderizado como reporte de compras.
// @Tags         alerts
// @Produce      application/pdf
// @Param        companyId  path  int  true  "ID de la empresa (entero positivo)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock/report [get]
func (h *AlertHandler) GetLowStockReport(c *fiber.Ctx) error {
	companyID, err := alerts.ParseCompanyID(c.Params("companyId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "company id inválido: debe ser un entero positivo"})
	}

	pdfBytes, err := h.uc.BuildReport(c.Context(), companyID)
	if err != nil {
		return h.internalError(c, companyID, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-reposicion.pdf"`)
	return c.Send(pdfBytes)
}

// internalError loguea el detalle y responde 500 con mensaje genérico
// (el detalle del store no se expone al cliente).
func (h *AlertHandler) internalError(c *fiber.Ctx, companyID int64, err error) error {
	if errors.Is(err, domain.ErrInvalidCompanyID) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "company id inválido: debe ser un entero positivo"})
	}
	h.log.Error().Err(err).Int64("company_id", companyID).Msg("pipeline de alertas falló")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno al calcular alertas"})
}
