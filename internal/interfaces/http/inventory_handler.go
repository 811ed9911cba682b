package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stock-ledger/internal/application/dto"
	"github.com/invorya/stock-ledger/internal/application/inventory"
)

// InventoryHandler maneja los traslados de stock y el log de movimientos (protegido).
type InventoryHandler struct {
	transferUC *inventory.TransferUseCase
	movementUC *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(transferUC *inventory.TransferUseCase, movementUC *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{transferUC: transferUC, movementUC: movementUC}
}

// Transfer godoc
// @Summary      Trasladar stock entre bodegas
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "product_id, quantity, source_warehouse_id, destination_warehouse_id"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK"
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.transferUC.Transfer(c.Context(), inventory.TransferInput{
		ProductID:              in.ProductID,
		Quantity:               in.Quantity,
		SourceWarehouseID:      in.SourceWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:                     movement.ID,
		ProductID:              movement.ProductID,
		Quantity:               movement.Quantity,
		SourceWarehouseID:      movement.SourceWarehouseID,
		DestinationWarehouseID: movement.DestinationWarehouseID,
		Status:                 movement.Status,
		MovementDate:           movement.MovementDate,
		UpdatedAt:              movement.UpdatedAt,
	})
}

// ListMovements godoc
// @Summary      Listar movimientos en orden de creación
// @Description  Log append-only de traslados. Con details=true resuelve
//
//	producto y bodegas; con product_id o warehouse_id filtra.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        details       query  bool    false  "Resolver producto y bodegas"
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega (origen o destino)"
// @Param        from          query  string  false  "Fecha inicial (RFC 3339)"
// @Param        to            query  string  false  "Fecha final (RFC 3339)"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	if c.QueryBool("details") {
		out, err := h.movementUC.ListWithDetails()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}

	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	from := parseDate(c.Query("from"))
	to := parseDate(c.Query("to"))

	if productID := c.Query("product_id"); productID != "" {
		out, err := h.movementUC.ListByProduct(productID, from, to, page.Limit, page.Offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	if warehouseID := c.Query("warehouse_id"); warehouseID != "" {
		out, err := h.movementUC.ListByWarehouse(warehouseID, from, to, page.Limit, page.Offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}

	out, err := h.movementUC.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
