package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-bot/internal/application/dto"
	"github.com/jhoicas/Tienda-bot/internal/application/usecase"
)

// AdminHandler reportes y gestión de pedidos del API de administración.
type AdminHandler struct {
	orders *usecase.OrderUseCase
	report *usecase.ReportUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(orders *usecase.OrderUseCase, report *usecase.ReportUseCase) *AdminHandler {
	return &AdminHandler{orders: orders, report: report}
}

// Stats godoc
// @Summary      Estadísticas de ventas
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.orders.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToStatsResponse(stats))
}

// Orders godoc
// @Summary      Últimos pedidos
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	orders, err := h.orders.Recent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.ToOrderResponse(o))
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de un pedido
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.UpdateStatusRequest  true  "Nuevo estado"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	// Sobre un id inexistente el update es un no-op deliberado.
	if err := h.orders.UpdateStatus(id, in.Status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// OrdersReport godoc
// @Summary      Reporte de ventas en PDF
// @Tags         admin
// @Security     Bearer
// @Produce      application/pdf
// @Param        limit  query  int  false  "Pedidos incluidos"  default(50)
// @Success      200  {file}  binary
// @Router       /api/orders/report [get]
func (h *AdminHandler) OrdersReport(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}
	pdfBytes, err := h.report.OrdersReport(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orders-report.pdf"`)
	return c.Send(pdfBytes)
}
