package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-bot/internal/application/auth"
	"github.com/jhoicas/Tienda-bot/internal/application/usecase"
	"github.com/jhoicas/Tienda-bot/internal/interfaces/dispatch"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Dispatcher *dispatch.Dispatcher
	OrderUC    *usecase.OrderUseCase
	ReportUC   *usecase.ReportUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas: webhook del transporte y API admin protegido.
func Router(app *fiber.App, deps RouterDeps) {
	webhookHandler := NewWebhookHandler(deps.Dispatcher)
	app.Post("/webhook", webhookHandler.Handle)

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token de admin)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminHandler := NewAdminHandler(deps.OrderUC, deps.ReportUC)
	protected.Get("/stats", adminHandler.Stats)
	protected.Get("/orders", adminHandler.Orders)
	protected.Get("/orders/report", adminHandler.OrdersReport)
	protected.Patch("/orders/:id/status", adminHandler.UpdateStatus)
}
