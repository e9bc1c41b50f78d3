package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"itinerary-service/internal/domain/repository"
	"itinerary-service/internal/infrastructure/config"
	"itinerary-service/internal/infrastructure/persistence"
	"itinerary-service/internal/infrastructure/router"
	"itinerary-service/internal/interface/api"
	gormRepo "itinerary-service/internal/interface/repository"
	mongoRepo "itinerary-service/internal/interface/repository"
	"itinerary-service/internal/usecase"
	"itinerary-service/pkg/logger"
	"itinerary-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Itinerary Service", "version", cfg.AppVersion)

	rules, err := cfg.SearchRules()
	if err != nil {
		log.Fatal("Failed to load search rules", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgresDB(ctx, cfg.PostgresDSN, persistence.DefaultPostgresOptions())
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(cfg.MetricsNamespace, registry)

	// Set up repositories
	locationRepository := gormRepo.NewGormLocationRepository(gormDB)
	carrierRepository := gormRepo.NewGormCarrierRepository(gormDB)
	scheduleRepository := gormRepo.NewGormScheduleRepository(gormDB, log)

	// Search logs are optional
	var (
		mongoClient         *mongo.Client
		searchLogRepository repository.SearchLogRepository
	)
	if cfg.SearchLogEnabled {
		log.Info("Connecting to MongoDB")
		mongoClient, err = persistence.NewMongoClient(ctx, persistence.DefaultMongoOptions(cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword))
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		searchLogRepository = mongoRepo.NewMongoSearchLogRepository(mongoClient.Database(cfg.MongoDB))
	}

	search := usecase.NewItinerarySearch(locationRepository, scheduleRepository, searchLogRepository, rules.SearchOptions(), log, m)
	catalog := usecase.NewCatalogService(locationRepository, carrierRepository, scheduleRepository)

	// Set up HTTP router
	httpRouter := router.NewHTTPRouter(log, registry, cfg.RequestTimeout)
	httpRouter.Register(api.NewSearchHandler(search, log))
	httpRouter.Register(api.NewCatalogHandler(catalog, log))
	httpRouter.AddHealthCheck("postgres", postgresCheck(gormDB))
	if mongoClient != nil {
		httpRouter.AddHealthCheck("mongodb", func(ctx context.Context) error {
			return mongoClient.Ping(ctx, nil)
		})
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpRouter,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port, "lookaheadDays", rules.LookaheadDays)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}
	if err := persistence.ClosePostgresDB(gormDB); err != nil {
		log.Error("PostgreSQL close error", "error", err)
	}

	log.Info("Itinerary Service stopped")
}

func postgresCheck(db *gorm.DB) router.HealthCheck {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
