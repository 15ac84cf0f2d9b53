package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/usecase/analytics"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/usecase/enhancement"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/ai"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/imaging"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/lock"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/storage"
	timeProvider "github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/config"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	for _, warning := range cfg.Warnings() {
		log.Printf("Warning: %s", warning)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		Service:    cfg.Logger.Service,
	})
	defer appLogger.Flush()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with an error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()
	ids := identity.NewUUIDGenerator()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMetrics := metrics.NewPrometheusMetrics(registry)

	// Database
	dbManager := database.NewManager(newDatabaseConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()
	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	db := dbManager.DB()
	userRepo := repository.NewUserRepository(db, tp, appLogger, repository.DefaultRetryConfig())
	purchaseRepo := repository.NewPurchaseRepository(db, appLogger)
	enhancementRepo := repository.NewEnhancementRepository(db, appLogger)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	reconciliationRepo := repository.NewReconciliationRepository(db, appLogger)
	userLockRepo := repository.NewUserLockRepository(db, tp, appLogger)

	locker, closeLocker, err := newUserLocker(cfg, userLockRepo, ids, tp, promMetrics, appLogger)
	if err != nil {
		return err
	}
	defer closeLocker()

	// Gateways
	store, err := storage.NewS3Store(ctx, storage.Config{
		Endpoint:      cfg.Storage.Endpoint,
		Region:        cfg.Storage.Region,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		Bucket:        cfg.Storage.Bucket,
		UsePathStyle:  cfg.Storage.UsePathStyle,
		CreateBucket:  cfg.Storage.CreateBucket,
		PresignExpiry: cfg.Storage.PresignExpiry,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
		VerifyUploads: cfg.Storage.VerifyUploads,
	}, ids, tp, promMetrics, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	transformer, err := ai.NewGeminiTransformer(ctx, ai.Config{
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		Timeout: cfg.AI.Timeout,
	}, tp, promMetrics, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize transformer: %w", err)
	}

	// Use cases
	catalog, err := cfg.Ledger.Catalog()
	if err != nil {
		return err
	}
	ledgerService := ledger.NewService(
		ledger.NewRules(catalog),
		userRepo,
		purchaseRepo,
		dbManager.CreateUnitOfWork(),
		locker,
		ids,
		tp,
		promMetrics,
		appLogger,
	)
	reconciler := ledger.NewReconciler(ledgerService, reconciliationRepo, ids, tp, promMetrics, appLogger).
		WithBatchSize(cfg.Reconciliation.BatchSize).
		WithMaxAttempts(cfg.Reconciliation.MaxAttempts)
	analyticsService := analytics.NewService(analyticsRepo, ids, tp, appLogger)

	orchestrator := enhancement.NewOrchestrator(enhancement.Dependencies{
		Ledger:          ledgerService,
		Reconciler:      reconciler,
		Analytics:       analyticsService,
		Transformer:     transformer,
		Store:           store,
		Codec:           imaging.NewCodec(),
		EnhancementRepo: enhancementRepo,
		TimeProvider:    tp,
		IDGenerator:     ids,
		Metrics:         promMetrics,
		Logger:          appLogger,
	}, enhancement.Options{
		TargetSizes: map[entity.Tier]int{
			entity.TierStandard: cfg.AI.StandardSize,
			entity.TierHD:       cfg.AI.HDSize,
		},
		ThumbnailSize:  cfg.Enhancement.ThumbnailSize,
		MaxUploadBytes: cfg.Enhancement.MaxUploadBytes,
	})

	// Background jobs
	scheduler := worker.NewScheduler(appLogger)
	if err := scheduler.Register(worker.ReconciliationJob(cfg.Reconciliation.Schedule, reconciler, appLogger)); err != nil {
		return err
	}
	if cfg.Locking.Backend == config.LockBackendDatabase {
		if err := scheduler.Register(worker.LockCleanupJob(cfg.Locking.CleanupSchedule, userLockRepo, appLogger)); err != nil {
			return err
		}
	}
	scheduler.Start()

	// HTTP
	validate := handler.NewValidator()
	router := gin.New()
	router.MaxMultipartMemory = cfg.Enhancement.MaxUploadBytes
	routes.SetupMiddlewares(router, appLogger, tp, promMetrics)

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		metricsHandler = promMetrics.Handler()
	}
	routes.SetupRoutes(router, routes.Handlers{
		Enhancement: handler.NewEnhancementHandler(orchestrator, validate, appLogger, cfg.Enhancement.MaxUploadBytes),
		User:        handler.NewUserHandler(ledgerService, appLogger),
		Purchase:    handler.NewPurchaseHandler(ledgerService, validate, appLogger),
		Analytics:   handler.NewAnalyticsHandler(analyticsService, validate, appLogger),
		Health:      handler.NewHealthHandler(dbManager, tp, appLogger),
		Metrics:     metricsHandler,
	}, cfg.Enhancement.MaxUploadBytes)

	server := &http.Server{
		Addr: fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: routes.WithCORS(router, routes.CORSConfig{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowCredentials: cfg.CORS.AllowCredentials,
		}),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":         server.Addr,
			"env":          cfg.Environment,
			"lock_backend": cfg.Locking.Backend,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}
	scheduler.Stop(shutdownCtx)

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// newDatabaseConfig maps the application config onto the database adapter config
func newDatabaseConfig(cfg *config.Config) *database.Config {
	return &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		SlowThreshold:   cfg.Database.SlowThreshold,
		LogLevel:        cfg.Database.LogLevel,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
		MonitorInterval: cfg.Database.PoolMonitor,
	}
}

// newUserLocker builds the configured per-user lock backend and its cleanup
func newUserLocker(
	cfg *config.Config,
	leases persistence.UserLockRepository,
	ids coreport.IDGenerator,
	tp coreport.TimeProvider,
	m coreport.Metrics,
	appLogger coreport.Logger,
) (persistence.UserLocker, func(), error) {
	switch cfg.Locking.Backend {
	case config.LockBackendDatabase:
		return lock.NewLeaseLocker(leases, ids, cfg.Locking.Timeout, cfg.Locking.Lease, tp, m, appLogger), func() {}, nil
	case config.LockBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Locking.Timeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				appLogger.Warn("Failed to close redis client", map[string]any{"error": err.Error()})
			}
		}
		return lock.NewRedisLocker(client, cfg.Locking.Timeout, tp, m, appLogger), closeClient, nil
	default:
		local := lock.NewLocalLocker(cfg.Locking.Timeout, tp, m, appLogger)
		return local, local.Shutdown, nil
	}
}
