package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	creditapp "github.com/udhaar/backend/internal/application/credit"
	directoryapp "github.com/udhaar/backend/internal/application/directory"
	identityapp "github.com/udhaar/backend/internal/application/identity"
	"github.com/udhaar/backend/internal/domain/identity"
	"github.com/udhaar/backend/internal/infrastructure/auth"
	"github.com/udhaar/backend/internal/infrastructure/cache"
	"github.com/udhaar/backend/internal/infrastructure/config"
	"github.com/udhaar/backend/internal/infrastructure/logger"
	"github.com/udhaar/backend/internal/infrastructure/persistence"
	"github.com/udhaar/backend/internal/interfaces/http/handler"
	"github.com/udhaar/backend/internal/interfaces/http/middleware"
	"github.com/udhaar/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.NewFromConfig(cfg.Log, cfg.App.Env)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Udhaar Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection with zap-backed query logging
	db, err := persistence.NewDatabaseWithZap(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Recent-emails store is backed by Redis; fall back to an in-memory
	// list when Redis is unreachable so login keeps working.
	var recentEmails identity.RecentEmailStore
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory recent-email store", zap.Error(err))
		recentEmails = cache.NewInMemoryRecentEmailStore()
	} else {
		store := cache.NewRedisRecentEmailStore(redisClient, "")
		defer func() {
			if err := store.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}()
		recentEmails = store
		log.Info("Redis connected successfully", zap.String("addr", cfg.Redis.Addr()))
	}

	// Initialize repositories
	shopkeeperRepo := persistence.NewGormShopkeeperRepository(db.DB)
	creditEntryRepo := persistence.NewGormCreditEntryRepository(db.DB)
	accountRepo := persistence.NewGormAccountRepository(db.DB)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	shopkeeperService := directoryapp.NewShopkeeperService(shopkeeperRepo, log)
	entryService := creditapp.NewEntryService(creditEntryRepo, log)
	authService := identityapp.NewAuthService(accountRepo, recentEmails, jwtService, log)

	// Initialize HTTP handlers
	shopkeeperHandler := handler.NewShopkeeperHandler(shopkeeperService)
	creditHandler := handler.NewCreditHandler(entryService)
	authHandler := handler.NewAuthHandler(authService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// JWT authentication with skip paths for public endpoints
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/auth/recent-emails",
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Identity domain (login, refresh, recent emails) - public routes
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.Use(middleware.AuthRateLimit(authLimiter))
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.GET("/recent-emails", authHandler.RecentEmails)

	// Directory domain (shopkeeper counterparty book)
	directoryRoutes := router.NewDomainGroup("directory", "/directory")
	directoryRoutes.POST("/shopkeepers", shopkeeperHandler.Create)
	directoryRoutes.GET("/shopkeepers", shopkeeperHandler.List)
	directoryRoutes.GET("/shopkeepers/:id", shopkeeperHandler.GetByID)
	directoryRoutes.PUT("/shopkeepers/:id", shopkeeperHandler.Update)
	directoryRoutes.DELETE("/shopkeepers/:id", shopkeeperHandler.Delete)
	directoryRoutes.POST("/shopkeepers/:id/activate", shopkeeperHandler.Activate)
	directoryRoutes.POST("/shopkeepers/:id/deactivate", shopkeeperHandler.Deactivate)

	// Credit domain (udhaar book)
	creditRoutes := router.NewDomainGroup("credit", "/credit")
	creditRoutes.POST("/entries", creditHandler.Create)
	creditRoutes.GET("/entries", creditHandler.List)
	creditRoutes.GET("/entries/stats", creditHandler.Stats)
	creditRoutes.GET("/entries/summary", creditHandler.Summary)
	creditRoutes.GET("/entries/ledger", creditHandler.Ledger)
	creditRoutes.POST("/entries/sweep-overdue", creditHandler.SweepOverdue)
	creditRoutes.POST("/entries/imeis/validate", creditHandler.ValidateIMEIs)
	creditRoutes.GET("/entries/:id", creditHandler.GetByID)
	creditRoutes.DELETE("/entries/:id", creditHandler.Delete)
	creditRoutes.POST("/entries/:id/accept", creditHandler.Accept)
	creditRoutes.POST("/entries/:id/pay", creditHandler.Pay)
	creditRoutes.POST("/entries/:id/overdue", creditHandler.MarkOverdue)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(authRoutes).
		Register(directoryRoutes).
		Register(creditRoutes).
		Register(systemRoutes)

	r.Setup()

	// Simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Background sweep marks unpaid past-due entries as overdue
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	if cfg.Sweep.Enabled {
		go runOverdueSweep(sweepCtx, entryService, cfg.Sweep.Interval, log)
		log.Info("Overdue sweep enabled", zap.Duration("interval", cfg.Sweep.Interval))
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// runOverdueSweep periodically flags unpaid entries whose due date has
// passed until the context is cancelled
func runOverdueSweep(ctx context.Context, entryService *creditapp.EntryService, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := entryService.SweepOverdue(ctx)
			if err != nil {
				log.Error("Overdue sweep failed", zap.Error(err))
				continue
			}
			if result.Flagged > 0 {
				log.Info("Overdue sweep flagged entries", zap.Int("flagged", result.Flagged))
			}
		}
	}
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
