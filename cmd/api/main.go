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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/logistica-api/docs"
	"github.com/jhoicas/logistica-api/internal/application/allocation"
	"github.com/jhoicas/logistica-api/internal/application/inventory"
	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/application/production"
	"github.com/jhoicas/logistica-api/internal/application/shipping"
	"github.com/jhoicas/logistica-api/internal/infrastructure/cache"
	"github.com/jhoicas/logistica-api/internal/infrastructure/memory"
	"github.com/jhoicas/logistica-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/logistica-api/internal/interfaces/http"
	"github.com/jhoicas/logistica-api/pkg/config"
	"github.com/jhoicas/logistica-api/pkg/logger"
)

// @title        Logística API
// @version      1.0
// @description  Libro de stock, asignaciones a cajas, remitos y órdenes de producción.
// @BasePath     /
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	txRunner, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	var (
		stockCache  ports.StockCache       = ports.NoopStockCache{}
		idempotency ports.IdempotencyStore = cache.NewMemoryIdempotencyStore()
	)
	if cfg.Redis.Enabled() {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		stockCache = cache.NewRedisStockCache(rdb, cfg.Redis.StockTTL)
		idempotency = cache.NewRedisIdempotencyStore(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis habilitado")
	}

	movementUC := inventory.NewMovementUseCase(txRunner, stockCache)
	allocationUC := allocation.NewUseCase(txRunner, stockCache)
	shippingUC := shipping.NewUseCase(txRunner, allocationUC, stockCache)
	productionUC := production.NewUseCase(txRunner)

	app := httpRouter.NewApp(cfg.App.Name)
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Logística API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MovementUC:     movementUC,
		AllocationUC:   allocationUC,
		ShippingUC:     shippingUC,
		ProductionUC:   productionUC,
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
		Idempotency:    idempotency,
		IdempotencyTTL: cfg.Redis.IdempotencyTTL,
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

// openStore abre el almacén configurado y devuelve su función de cierre.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (ports.TxRunner, func()) {
	if cfg.Storage.Driver == "memory" {
		store := memory.NewStore()
		if cfg.Storage.SeedFile != "" {
			f, err := os.Open(cfg.Storage.SeedFile)
			if err != nil {
				log.Fatal().Err(err).Str("file", cfg.Storage.SeedFile).Msg("abrir seed")
			}
			n, err := store.LoadSeed(f)
			f.Close()
			if err != nil {
				log.Fatal().Err(err).Msg("cargar seed")
			}
			log.Info().Int("records", n).Msg("seed cargado")
		}
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		return store, func() {}
	}

	if cfg.DB.MigrateOnStart {
		m, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log.Zerolog())
		if err != nil {
			log.Fatal().Err(err).Msg("migrador")
		}
		if err := m.Up(); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		if err := m.Close(); err != nil {
			log.Warn().Err(err).Msg("cerrar migrador")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	return postgres.NewTxRunner(pool), pool.Close
}
