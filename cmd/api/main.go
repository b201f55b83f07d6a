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

	"github.com/jhoicas/revenue-api/internal/application/auth"
	"github.com/jhoicas/revenue-api/internal/application/catalog"
	"github.com/jhoicas/revenue-api/internal/application/clients"
	"github.com/jhoicas/revenue-api/internal/application/contracts"
	"github.com/jhoicas/revenue-api/internal/application/revenue"
	"github.com/jhoicas/revenue-api/internal/application/sweeper"
	"github.com/jhoicas/revenue-api/internal/bootstrap"
	infrapdf "github.com/jhoicas/revenue-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/revenue-api/internal/interfaces/http"
	"github.com/jhoicas/revenue-api/pkg/config"
	"github.com/jhoicas/revenue-api/pkg/logger"
)

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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store, err := bootstrap.OpenStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer store.Close()

	rates, closeRates := bootstrap.NewRateProvider(ctx, cfg, log)
	defer closeRates()

	// PDF: resumen del contrato con pagos y saldo
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	authUC := auth.NewAuthUseCase(store.Users, store.RefreshTokens, auth.JWTConfig{
		Secret:       cfg.JWT.Secret,
		ExpMinutes:   cfg.JWT.Expiration,
		Issuer:       cfg.JWT.Issuer,
		RefreshHours: cfg.JWT.RefreshHours,
	})
	clientUC := clients.NewClientUseCase(store.Clients)
	catalogUC := catalog.NewCatalogUseCase(store.Software, store.Discounts)
	contractUC := contracts.NewContractUseCase(
		store.TxRunner, store.Clients, store.Software, store.Discounts,
		store.Contracts, store.Payments, pdfGenerator,
	)
	paymentUC := contracts.NewPaymentUseCase(store.TxRunner, store.Contracts, store.Payments)
	revenueUC := revenue.NewRevenueUseCase(store.Contracts, rates)

	sweepDone := make(chan struct{})
	if cfg.Sweeper.Enabled {
		sw := sweeper.New(store.TxRunner, cfg.Sweeper.Interval, log)
		go func() {
			defer close(sweepDone)
			sw.Run(ctx)
		}()
	} else {
		close(sweepDone)
		log.Info().Msg("barrido de contratos vencidos deshabilitado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Revenue Recognition API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ClientUC:   clientUC,
		CatalogUC:  catalogUC,
		ContractUC: contractUC,
		PaymentUC:  paymentUC,
		RevenueUC:  revenueUC,
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

	// Detiene el barrido periódico y espera a que salga.
	stop()
	select {
	case <-sweepDone:
	case <-shutdownCtx.Done():
		log.Warn().Msg("barrido no terminó a tiempo")
	}

	log.Info().Msg("aplicación detenida")
}
