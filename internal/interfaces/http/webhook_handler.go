package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-bot/internal/application/dto"
	"github.com/jhoicas/Tienda-bot/internal/domain"
	"github.com/jhoicas/Tienda-bot/internal/interfaces/dispatch"
)

// WebhookHandler recibe los eventos entrantes del transporte y devuelve la
// respuesta que el transporte debe enviar.
type WebhookHandler struct {
	dispatcher *dispatch.Dispatcher
}

// NewWebhookHandler construye el handler.
func NewWebhookHandler(dispatcher *dispatch.Dispatcher) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher}
}

// Handle godoc
// @Summary      Evento entrante del canal de mensajería
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        body  body  dispatch.InboundEvent  true  "Evento"
// @Success      200   {object}  dispatch.Reply
// @Success      204   "entrada sin ruta: se descarta en silencio"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /webhook [post]
func (h *WebhookHandler) Handle(c *fiber.Ctx) error {
	var ev dispatch.InboundEvent
	if err := c.BodyParser(&ev); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if ev.SessionKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "session_key es requerido"})
	}
	reply, err := h.dispatcher.Handle(c.Context(), ev)
	if err != nil {
		if errors.Is(err, domain.ErrUnroutableInput) {
			// Silencio hacia el usuario: el transporte no envía nada.
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(reply)
}
