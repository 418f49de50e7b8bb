package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cartapp "github.com/CRT1223/tech13-garage/internal/application/cart"
	catalogapp "github.com/CRT1223/tech13-garage/internal/application/catalog"
	contentapp "github.com/CRT1223/tech13-garage/internal/application/content"
	"github.com/CRT1223/tech13-garage/internal/application/dashboard"
	identityapp "github.com/CRT1223/tech13-garage/internal/application/identity"
	inventoryapp "github.com/CRT1223/tech13-garage/internal/application/inventory"
	"github.com/CRT1223/tech13-garage/internal/application/media"
	"github.com/CRT1223/tech13-garage/internal/application/storefront"
	tradeapp "github.com/CRT1223/tech13-garage/internal/application/trade"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/auth"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/cache"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/config"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/logger"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/migration"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/persistence"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/seed"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/storage"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/telemetry"
	"github.com/CRT1223/tech13-garage/internal/interfaces/http/handler"
	"github.com/CRT1223/tech13-garage/internal/interfaces/http/middleware"
	"github.com/CRT1223/tech13-garage/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/CRT1223/tech13-garage/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Tech13 Garage API
//	@version		1.0
//	@description	Storefront, cart, checkout and back-office API for a motorcycle parts and workshop shop.

//	@contact.name	Tech13 Garage
//	@contact.url	https://github.com/CRT1223/tech13-garage

//	@host		localhost:5000
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Tech13 Garage",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	ctx := context.Background()

	tp, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer shutdownWithTimeout(log, "tracer provider", tp.Shutdown)

	mp, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer shutdownWithTimeout(log, "meter provider", mp.Shutdown)

	lp, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	defer shutdownWithTimeout(log, "logger provider", lp.Shutdown)
	log = lp.Tee(log)

	profiler, err := telemetry.NewProfiler(cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}()

	dialect := migration.DialectSQLite
	if !cfg.Database.IsSQLite() {
		dialect = migration.DialectPostgres
	}
	if cfg.Database.AutoMigrate {
		runMigrations(cfg, dialect, log)
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	dbSystem := "sqlite"
	if dialect == migration.DialectPostgres {
		dbSystem = "postgresql"
	}
	tracingPlugin := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBSystem:        dbSystem,
	}, log)
	if err := tracingPlugin.Register(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	var redisClient redis.UniversalClient
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		redisClient = client
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	}
	cacheFactory := cache.NewFactory(redisClient, cache.WithLogger(log))
	idempotencyStore := cacheFactory.IdempotencyStore()

	var tokenBlacklist auth.TokenBlacklist = auth.NewInMemoryTokenBlacklist()
	if redisClient != nil {
		tokenBlacklist = auth.NewRedisTokenBlacklist(redisClient)
	}

	imageStore, err := storage.New(ctx, &cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize image storage", zap.Error(err))
	}
	mediaService := media.NewService(imageStore, cfg.Storage.MaxUploadSize, media.WithLogger(log))

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	serviceRepo := persistence.NewGormServiceRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	walkInRepo := persistence.NewGormWalkInSaleRepository(db.DB)
	inventoryTxRepo := persistence.NewGormInventoryTransactionRepository(db.DB)
	teamRepo := persistence.NewGormTeamMemberRepository(db.DB)
	collaborateTeamRepo := persistence.NewGormCollaborateTeamRepository(db.DB)
	awardRepo := persistence.NewGormAwardRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, tokenBlacklist, log)
	userService := identityapp.NewUserService(userRepo, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, reviewRepo, mediaService, log)
	workshopService := catalogapp.NewWorkshopService(serviceRepo, reviewRepo, mediaService, log)
	reviewService := catalogapp.NewReviewService(reviewRepo, productRepo, serviceRepo, log)
	teamService := contentapp.NewTeamService(teamRepo, mediaService, log)
	collaborateTeamService := contentapp.NewCollaborateTeamService(collaborateTeamRepo, mediaService, log)
	awardService := contentapp.NewAwardService(awardRepo, mediaService, log)
	cartService := cartapp.NewCartService(cartRepo, productRepo, serviceRepo, log)
	orderService := tradeapp.NewOrderService(orderRepo, cartRepo, userRepo, mediaService,
		idempotencyStore, cfg.HTTP.IdempotencyTTL, log)
	walkInService := tradeapp.NewWalkInService(walkInRepo, productRepo, idempotencyStore, cfg.HTTP.IdempotencyTTL, log)
	inventoryService := inventoryapp.NewInventoryService(inventoryTxRepo, productRepo,
		cfg.Inventory.LowStockThreshold, cfg.Inventory.RecentTransactions, log)
	storefrontService := storefront.NewService(productService, categoryService, workshopService,
		awardService, teamService, collaborateTeamService)
	dashboardService := dashboard.NewService(productRepo, orderRepo, userRepo, mediaService, cfg.Inventory.LowStockThreshold)

	if cfg.Telemetry.Enabled && cfg.Telemetry.MetricsEnabled {
		businessMetrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
			Meter:    mp.Meter("tech13-garage/business"),
			Logger:   log,
			LowStock: inventoryService,
		})
		if err != nil {
			log.Fatal("Failed to initialize business metrics", zap.Error(err))
		}
		businessMetrics.StartPeriodicCollection(ctx, cfg.Telemetry.MetricsInterval)
		defer businessMetrics.Stop()

		orderService.SetBusinessMetrics(businessMetrics)
		walkInService.SetBusinessMetrics(businessMetrics)
		inventoryService.SetBusinessMetrics(businessMetrics)
	}

	created, err := userService.EnsureAdmin(ctx)
	if err != nil {
		log.Fatal("Failed to ensure admin account", zap.Error(err))
	}
	if created {
		log.Warn("Default admin account created; change its password",
			zap.String("username", identityapp.DefaultAdminUsername))
	}

	if cfg.Database.Seed {
		seeder := seed.New(seed.Repositories{
			Users:      userRepo,
			Categories: categoryRepo,
			Products:   productRepo,
			Services:   serviceRepo,
			Reviews:    reviewRepo,
			Team:       teamRepo,
			Awards:     awardRepo,
		}, log)
		if _, err := seeder.Run(ctx, seed.Options{}); err != nil {
			log.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}

	// HTTP handlers
	h := router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Storefront: handler.NewStorefrontHandler(storefrontService, categoryService, productService, workshopService),
		Cart:       handler.NewCartHandler(cartService),
		Order:      handler.NewOrderHandler(orderService),
		Review:     handler.NewReviewHandler(reviewService),
		Product:    handler.NewProductHandler(productService),
		Category:   handler.NewCategoryHandler(categoryService),
		Service:    handler.NewServiceHandler(workshopService),
		Content:    handler.NewContentHandler(teamService, collaborateTeamService, awardService),
		Customer:   handler.NewCustomerHandler(userService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Inventory:  handler.NewInventoryHandler(inventoryService),
		WalkIn:     handler.NewWalkInHandler(walkInService, productService),
	}
	guards := router.Guards{
		Authenticated: middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
			JWTService:     jwtService,
			TokenBlacklist: tokenBlacklist,
			Logger:         log,
		}),
		Admin: middleware.RequireAdmin(),
	}
	if cfg.HTTP.AuthRateLimitEnabled {
		limiter := cacheFactory.RateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		guards.AuthRateLimit = middleware.RateLimit(limiter, log)
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Order matters: the request ID must exist before logging, and tracing wraps the handlers
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     tp.IsEnabled(),
	}))
	engine.Use(middleware.TracingAttributeInjector())
	engine.Use(middleware.SpanErrorMarker())
	if mp.IsEnabled() {
		engine.Use(middleware.HTTPMetrics(mp.Meter("tech13-garage/http"), log))
	}
	engine.Use(middleware.Profiling(profiler.IsEnabled()))

	systemHandler := handler.NewSystemHandler(db, version)
	engine.GET("/health", systemHandler.Health)

	if cfg.Storage.Driver == "" || cfg.Storage.Driver == "local" {
		engine.Static(cfg.Storage.PublicPrefix, cfg.Storage.UploadDir)
	}

	if cfg.HTTP.SwaggerEnabled && !cfg.IsProduction() {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.Info)

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		MountAPI(h, guards).
		Register(systemRoutes).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func runMigrations(cfg *config.Config, dialect string, log *zap.Logger) {
	migrator, err := migration.NewFromURL(cfg.Database.MigrationURL(), dialect, log)
	if err != nil {
		log.Fatal("Failed to open migrations", zap.Error(err))
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Warn("Error closing migrator", zap.Error(err))
		}
	}()
	if err := migrator.Up(); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}
}

func shutdownWithTimeout(log *zap.Logger, name string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Error("Error shutting down "+name, zap.Error(err))
	}
}
