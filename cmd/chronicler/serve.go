package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"arctic-chronicler/internal/adapter"
	"arctic-chronicler/internal/cache"
	"arctic-chronicler/internal/config"
	"arctic-chronicler/internal/database"
	"arctic-chronicler/internal/handler"
	"arctic-chronicler/internal/logger"
	"arctic-chronicler/internal/metrics"
	"arctic-chronicler/internal/middleware"
	"arctic-chronicler/internal/repository"
	"arctic-chronicler/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending database migrations before serving")
}

// appDeps is everything the HTTP app needs once the backends are connected.
type appDeps struct {
	Handlers handler.Handlers
	Tokens   service.TokenService
	Recorder *metrics.Recorder
	Gatherer prometheus.Gatherer
	Health   *handler.HealthHandler
}

func runServe(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	log := logger.Get()

	if catalogPath == "" {
		catalogPath = cfg.Catalog.Path
	}
	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Info("Catalog loaded",
		zap.String("title", cat.Title()),
		zap.Int("missions", len(cat.Missions())),
		zap.Int("keywords", cat.Keywords().Len()))

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()
	redisCache := adapter.NewRedisCacheAdapter(redisClient)
	store := adapter.NewCachedExpeditionStore(redisCache, cfg.Expedition.StateTTL)

	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if migrateOnStart {
		applied, err := database.RunMigrations(ctx, db)
		if err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Migrations applied", zap.Strings("versions", applied))
	}

	attempts := repository.NewSQLXMissionAttemptRepository(db)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	tokens, err := service.NewTokenService(cfg.Token, cfg.Expedition.StateTTL)
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}

	expeditionService := service.NewExpeditionService(cat, store, attempts, tokens, recorder, cfg.Expedition.HistoryLimit)
	missionService := service.NewMissionService(cat, store, attempts, recorder)

	app := newApp(cfg.Server, appDeps{
		Handlers: handler.Handlers{
			Catalog:    handler.NewCatalogHandler(service.NewCatalogService(cat)),
			Timeline:   handler.NewTimelineHandler(service.NewTimelineService(cat)),
			Expedition: handler.NewExpeditionHandler(expeditionService),
			Mission:    handler.NewMissionHandler(missionService, expeditionService),
			Chat:       handler.NewChatHandler(service.NewChatService(cat, store, recorder, cfg.Expedition.TranscriptLimit)),
		},
		Tokens:   tokens,
		Recorder: recorder,
		Gatherer: registry,
		Health: handler.NewHealthHandler(map[string]handler.HealthCheck{
			"redis":  redisCache.Ping,
			"oracle": db.PingContext,
		}),
	})

	go func() {
		addr := ":" + strconv.Itoa(cfg.Server.Port)
		log.Info("Starting server", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			log.Error("Server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	log.Info("Server exited properly")
	return nil
}

func newApp(cfg config.ServerConfig, deps appDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Arctic Chronicler",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(deps.Recorder))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
	if deps.Health != nil {
		app.Get("/health", deps.Health.Health)
	}

	handler.RegisterRoutes(app.Group("/api"), deps.Handlers, deps.Tokens)
	return app
}
