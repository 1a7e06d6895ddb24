package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Tienda-bot/internal/application/auth"
	"github.com/jhoicas/Tienda-bot/internal/application/session"
	"github.com/jhoicas/Tienda-bot/internal/application/usecase"
	"github.com/jhoicas/Tienda-bot/internal/application/wizard"
	infrapdf "github.com/jhoicas/Tienda-bot/internal/infrastructure/pdf"
	"github.com/jhoicas/Tienda-bot/internal/infrastructure/sqlite"
	"github.com/jhoicas/Tienda-bot/internal/interfaces/dispatch"
	apphttp "github.com/jhoicas/Tienda-bot/internal/interfaces/http"
	"github.com/jhoicas/Tienda-bot/internal/locales"
	"github.com/jhoicas/Tienda-bot/pkg/config"
	"github.com/jhoicas/Tienda-bot/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store, err := sqlite.NewStore(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base SQLite")
	}
	defer store.Close()

	// Esquema idempotente en cada arranque; no hay migraciones.
	if err := store.InitSchema(); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	productRepo := sqlite.NewProductRepository(store.DB)
	orderRepo := sqlite.NewOrderRepository(store.DB)
	txRunner := sqlite.NewTxRunner(store)

	catalogUC := usecase.NewCatalogUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(txRunner, orderRepo)
	reportUC := usecase.NewReportUseCase(orderRepo, infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(cfg.Bot.AdminPasswordHash, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	loc := locales.New(cfg.Bot.DefaultLocale)
	sessions := session.NewStore()
	dispatcher := dispatch.NewDispatcher(dispatch.Deps{
		Catalog:       catalogUC,
		Orders:        orderUC,
		Sessions:      sessions,
		OrderWizard:   wizard.NewOrderWizard(orderUC, loc),
		CatalogWizard: wizard.NewCatalogWizard(catalogUC, loc),
		Locales:       loc,
		AdminIDs:      cfg.Bot.AdminIDs,
		Log:           log,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda Bot API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	apphttp.Router(app, apphttp.RouterDeps{
		Dispatcher: dispatcher,
		OrderUC:    orderUC,
		ReportUC:   reportUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
