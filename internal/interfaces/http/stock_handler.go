package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stock-ledger/internal/application/dto"
	"github.com/invorya/stock-ledger/internal/application/inventory"
)

// StockHandler maneja las lecturas del ledger y la sobrescritura directa de
// cantidad (protegido).
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar stock crudo (sin detalle)
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockResponse
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListStocks()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListWithDetails godoc
// @Summary      Listar stock con producto y bodega resueltos
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockWithDetailsResponse
// @Failure      500  {object}  dto.ErrorResponse  "DATA_INTEGRITY si hay referencias rotas"
// @Router       /api/stocks/details [get]
func (h *StockHandler) ListWithDetails(c *fiber.Ctx) error {
	out, err := h.uc.ListStocksWithDetails()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListLowStock godoc
// @Summary      Listar productos con stock bajo (cantidad ≤ umbral)
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockWithDetailsResponse
// @Router       /api/stocks/low [get]
func (h *StockHandler) ListLowStock(c *fiber.Ctx) error {
	out, err := h.uc.ListLowStockItems()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByWarehouse godoc
// @Summary      Stock de una bodega
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la bodega"
// @Success      200  {array}  dto.StockWithDetailsResponse
// @Router       /api/stocks/warehouse/{id} [get]
func (h *StockHandler) ListByWarehouse(c *fiber.Ctx) error {
	out, err := h.uc.ListStocksByWarehouse(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Stock de un producto en todas las bodegas
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.StockWithDetailsResponse
// @Router       /api/stocks/product/{id} [get]
func (h *StockHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListStocksByProduct(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Sobrescribir la cantidad de una fila de stock (override admin)
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetQuantityRequest  true  "product_id, warehouse_id, quantity"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stocks/quantity [put]
func (h *StockHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetQuantity(in.ProductID, in.WarehouseID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
