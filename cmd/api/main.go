package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Scheduling-api/docs"
	"github.com/jhoicas/Scheduling-api/internal/application/auth"
	"github.com/jhoicas/Scheduling-api/internal/application/inventory"
	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/internal/infrastructure/export"
	"github.com/jhoicas/Scheduling-api/internal/infrastructure/persistence"
	httpRouter "github.com/jhoicas/Scheduling-api/internal/interfaces/http"
	"github.com/jhoicas/Scheduling-api/pkg/config"
	"github.com/jhoicas/Scheduling-api/pkg/logger"
)

// @title                       Inventory Ledger API
// @version                     1.0
// @description                 Ledger de inventario por producto y ubicación.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("snapshot_backend", cfg.Ledger.SnapshotBackend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	snapshots, closeSnapshots, err := persistence.OpenSnapshots(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("backend de snapshots")
	}
	defer closeSnapshots()

	svc := inventory.NewService(snapshots, log, cfg.Ledger.CascadeRemove)
	if svc.SnapshotsEnabled() {
		if _, err := svc.LoadSnapshot(ctx); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				log.Fatal().Err(err).Msg("restaurar snapshot al iniciar")
			}
			log.Info().Msg("sin snapshot previo, estado vacío")
		}
	}

	tokenUC := auth.NewTokenUseCase(
		auth.Credentials{Username: cfg.Auth.Username, PasswordHash: cfg.Auth.PasswordHash},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: las escrituras no requieren token")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		UnescapePath: true,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Service:     svc,
		TokenUC:     tokenUC,
		XMLExporter: export.NewXMLExporter(),
		PDFExporter: export.NewPDFExporter(cfg.App.Name),
		JWTSecret:   cfg.JWT.Secret,
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

	if cfg.Ledger.SnapshotOnShutdown && svc.SnapshotsEnabled() {
		if _, err := svc.SaveSnapshot(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("snapshot al apagar")
		}
	}

	log.Info().Msg("aplicación detenida")
}
