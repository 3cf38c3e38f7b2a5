package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"travel-api/internal/api"
	"travel-api/internal/api/handlers"
	"travel-api/internal/config"
	"travel-api/internal/database"
	"travel-api/internal/logger"
	"travel-api/internal/middleware"
	"travel-api/internal/repository"
	"travel-api/internal/services"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		logger.Logger.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	mongoClient, db, err := database.ConnectMongo(connectCtx, cfg.Mongo)
	cancel()
	if err != nil {
		logger.Logger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	activityDB := initActivityDB(cfg.ActivityDatabaseURL)
	cache := initCache(cfg.Cache)
	storage := initStorage(cfg.Storage)
	mailer := services.NewMailer(cfg.Mail)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	countryRepo := repository.NewCountryRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	var (
		auditLogRepo   repository.AuditLogRepository
		requestLogRepo repository.RequestLogRepository
	)
	if activityDB != nil {
		auditLogRepo = repository.NewAuditLogRepository(activityDB)
		requestLogRepo = repository.NewRequestLogRepository(activityDB)
	}

	// Initialize services
	ttl := cfg.Cache.DefaultTTL
	auditLogService := services.NewAuditLogService(auditLogRepo)
	requestLogService := services.NewRequestLogService(requestLogRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.AdminEmails)
	destinationService := services.NewDestinationService(destinationRepo, cache, auditLogService, ttl)
	blogService := services.NewBlogService(blogRepo, cache, auditLogService, ttl)
	countryService := services.NewCountryService(countryRepo, destinationRepo, cache, auditLogService, ttl)
	feedbackService := services.NewFeedbackService(feedbackRepo, mailer, auditLogService, cache, cfg.Mail.FeedbackNotify)
	subscriptionService := services.NewSubscriptionService(subscriberRepo, mailer, auditLogService, cache)
	statsService := services.NewStatsService(statsRepo, cache, ttl)

	rateLimiter := middleware.NewIPRateLimiter(cfg.RateLimit)
	rateLimiter.StartCleanup(ctx)

	healthChecks := map[string]handlers.HealthCheck{
		"mongo": func(ctx context.Context) error { return mongoClient.Ping(ctx, readpref.Primary()) },
		"cache": cache.Ping,
	}

	router := api.SetupRoutes(api.Handlers{
		Auth:          handlers.NewAuthHandler(authService),
		Destinations:  handlers.NewDestinationHandler(destinationService),
		Blogs:         handlers.NewBlogHandler(blogService),
		Countries:     handlers.NewCountryHandler(countryService),
		Feedback:      handlers.NewFeedbackHandler(feedbackService),
		Subscriptions: handlers.NewSubscriptionHandler(subscriptionService),
		Uploads:       handlers.NewUploadHandler(storage, cfg.Storage.MaxUploadSize),
		Stats:         handlers.NewStatsHandler(statsService),
		AuditLogs:     handlers.NewAuditLogHandler(auditLogService),
		RequestLogs:   handlers.NewRequestLogHandler(requestLogService),
		Health:        handlers.NewHealthHandler(healthChecks, startTime),
	}, api.RouterConfig{
		AuthService:    authService,
		RateLimiter:    rateLimiter,
		RequestLogger:  middleware.NewRequestLogger(requestLogService),
		TrustedProxies: cfg.TrustedProxies,
		CacheStale:     cfg.Cache.StaleTime,
		CacheTTL:       cfg.Cache.DefaultTTL,
	})

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			middleware.RequestIDHeader,
		},
		ExposedHeaders: []string{
			middleware.RequestIDHeader,
			"Retry-After",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	// Create server with timeouts
	srv := &http.Server{
		Handler:      corsMiddleware.Handler(router),
		Addr:         ":" + cfg.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.LogEvent(logrus.InfoLevel, "Server starting", logrus.Fields{
			"port": cfg.Port,
			"env":  cfg.Env,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Logger.Info("Shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.WithError(err).Error("Graceful shutdown failed")
	}
	if closer, ok := cache.(*services.RedisCacheService); ok {
		_ = closer.Close()
	}
	closeActivityDB(activityDB)
	logger.Logger.Info("Server stopped")
}

// initActivityDB opens the optional Postgres store for audit and request logs.
func initActivityDB(dsn string) *gorm.DB {
	if dsn == "" {
		logger.Logger.Warn("ACTIVITY_DATABASE_URL not set, audit and request logs are not persisted")
		return nil
	}
	db, err := database.InitActivityDB(dsn)
	if err != nil {
		logger.Logger.Fatalf("Failed to connect to activity database: %v", err)
	}
	return db
}

func closeActivityDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func initCache(cfg *config.CacheConfig) services.CacheService {
	if !cfg.Enabled {
		logger.Logger.Info("Cache disabled")
		return services.NopCacheService{}
	}
	cache, err := services.NewRedisCacheService(cfg)
	if err != nil {
		logger.Logger.WithError(err).Warn("Redis unavailable, continuing without cache")
		return services.NopCacheService{}
	}
	return cache
}

func initStorage(cfg config.StorageConfig) services.StorageService {
	if cfg.Bucket == "" {
		logger.Logger.Warn("S3_BUCKET not set, image uploads are disabled")
		return services.DisabledStorage{}
	}
	storage, err := services.NewS3Storage(cfg)
	if err != nil {
		logger.Logger.Fatalf("Failed to initialize S3 storage: %v", err)
	}
	return storage
}
