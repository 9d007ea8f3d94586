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
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Propiedades-api/internal/application/auth"
	appon "github.com/jhoicas/Propiedades-api/internal/application/onboarding"
	"github.com/jhoicas/Propiedades-api/internal/application/usecase"
	"github.com/jhoicas/Propiedades-api/internal/domain/country"
	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/events"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/memory"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/orgservice"
	infrapdf "github.com/jhoicas/Propiedades-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Propiedades-api/internal/infrastructure/redis"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/Propiedades-api/internal/interfaces/http"
	"github.com/jhoicas/Propiedades-api/pkg/config"
	"github.com/jhoicas/Propiedades-api/pkg/logger"
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
		Str("draft_store", cfg.Onboarding.DraftStore).
		Str("org_service", cfg.OrgService.Mode).
		Msg("iniciando aplicación")

	registry := country.Default()
	if err := registry.Check(); err != nil {
		log.Fatal().Err(err).Msg("registro de países inconsistente")
	}

	ctx := context.Background()

	// PostgreSQL solo si algún componente lo usa.
	var pool *pgxpool.Pool
	if cfg.Onboarding.DraftStore == "postgres" || cfg.OrgService.Mode == "local" {
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(cfg.DB.ConnectionString(), "up"); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		pool, err = postgres.NewPool(ctx, cfg.DB, cfg.App.Name)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
	}

	onboardingMetrics := metrics.New()

	// Almacén de borradores. Redis vence por TTL de clave; memoria y PostgreSQL necesitan barrido.
	var drafts repository.DraftStore
	var sweepable repository.DraftSweeper
	switch cfg.Onboarding.DraftStore {
	case "memory":
		store := memory.NewDraftStore(cfg.Onboarding.DraftTTL)
		drafts, sweepable = store, store
	case "redis":
		client, err := infraredis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		drafts = infraredis.NewDraftStore(client, cfg.Onboarding.DraftTTL)
	case "postgres":
		store := postgres.NewDraftStore(pool, cfg.Onboarding.DraftTTL)
		drafts, sweepable = store, store
	}

	var sweeper *scheduler.DraftSweeper
	if sweepable != nil {
		sweeper = scheduler.NewDraftSweeper(sweepable, cfg.Onboarding.DraftTTL, onboardingMetrics, log)
		if err := sweeper.Start(cfg.Onboarding.SweepSchedule); err != nil {
			log.Fatal().Err(err).Msg("barrido de borradores")
		}
	}

	// Capacidad de creación de organizaciones.
	var orgs appon.OrganizationService
	switch cfg.OrgService.Mode {
	case "remote":
		orgs = orgservice.NewRemoteService(cfg.OrgService.BaseURL, cfg.OrgService.APIKey, cfg.OrgService.Timeout)
	default:
		orgs = orgservice.NewLocalService(postgres.NewTxRunner(pool))
	}

	// Eventos organization.created (opcional).
	var publisher appon.EventPublisher
	if cfg.NATS.URL != "" {
		natsPublisher, err := events.Connect(cfg.NATS.URL, cfg.NATS.Subject, cfg.App.Name)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a NATS")
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	onboardingUC := appon.NewUseCase(drafts, registry, infrapdf.NewMarotoPDFGenerator(), onboardingMetrics)
	gateway := appon.NewGateway(drafts, registry, orgs, publisher, onboardingMetrics, log)
	sessionUC := auth.NewSessionUseCase(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // logo en data URI
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Propiedades API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CountryUC:    usecase.NewCountryUseCase(registry),
		PlanUC:       usecase.NewPlanUseCase(),
		SessionUC:    sessionUC,
		OnboardingUC: onboardingUC,
		Gateway:      gateway,
		Metrics:      onboardingMetrics.Handler(),
		JWTSecret:    cfg.JWT.Secret,
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

	if sweeper != nil {
		sweeper.Stop(shutdownCtx)
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
