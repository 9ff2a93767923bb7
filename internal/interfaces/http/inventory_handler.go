package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/application/inventory"
	"github.com/invorya/stock-alerts/internal/domain"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

// LedgerEntryRequest body para POST /api/inventory/entries.
type LedgerEntryRequest struct {
	ProductID   int64           `json:"product_id"`
	WarehouseID int64           `json:"warehouse_id"`
	Kind        string          `json:"kind"` // SALE, RECEIVE, ADJUSTMENT
	Quantity    decimal.Decimal `json:"quantity"`
	Reference   string          `json:"reference,omitempty"`
}

// ThresholdRequest body para PUT /api/inventory/positions/threshold.
type ThresholdRequest struct {
	ProductID   int64           `json:"product_id"`
	WarehouseID int64           `json:"warehouse_id"`
	Threshold   decimal.Decimal `json:"threshold"`
}

// InventoryHandler maneja las peticiones HTTP del ledger y posiciones (protegido).
type InventoryHandler struct {
	uc        *inventory.RegisterEntryUseCase
	stockRepo repository.StockRepository
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RegisterEntryUseCase, stockRepo repository.StockRepository) *InventoryHandler {
	return &InventoryHandler{uc: uc, stockRepo: stockRepo}
}

// RegisterEntry godoc
// @Summary      Registrar entrada del ledger de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  LedgerEntryRequest  true  "product_id, warehouse_id, kind, quantity (con signo), reference"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/entries [post]
func (h *InventoryHandler) RegisterEntry(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == 0 || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token inválido"})
	}
	var in LedgerEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	err := h.uc.RegisterEntry(c.Context(), inventory.EntryInput{
		CompanyID:   companyID,
		UserID:      userID,
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Kind:        in.Kind,
		Quantity:    in.Quantity,
		Reference:   in.Reference,
	})
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos inválidos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "producto o bodega no encontrado"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "entrada registrada"})
}

// UpdateThreshold godoc
// @Summary      Actualizar umbral de alerta de una posición
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Param        body  body  ThresholdRequest  true  "product_id, warehouse_id, threshold (no negativo)"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/positions/threshold [put]
func (h *InventoryHandler) UpdateThreshold(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token inválido"})
	}
	var in ThresholdRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Threshold.IsNegative() || in.ProductID <= 0 || in.WarehouseID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos inválidos"})
	}
	if err := h.stockRepo.UpdateThreshold(in.ProductID, in.WarehouseID, in.Threshold); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
