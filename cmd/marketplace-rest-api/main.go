// cmd/marketplace-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/travel-marketplace/internal/api/rest/v1"
	"github.com/MGTheTrain/travel-marketplace/internal/app"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/caching"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/documents"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/auth"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/cache"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/connector"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/metrics"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/scheduler"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	ctx := context.Background()
	deps, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db        *gorm.DB
	services  *v1.Services
	tokens    users.TokenManager
	metrics   *metrics.Metrics
	scheduler *scheduler.Scheduler
}

// initializeDependencies sets up all application components
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	repos, err := persistence.NewRepositories(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create repositories: %w", err)
	}

	lookupCache, err := cache.NewCache(ctx, &cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	log.Info("Cache initialized: ", cfg.Cache.Type)

	documentConnector, err := connector.NewDocumentConnector(ctx, &cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document connector: %w", err)
	}

	tokens, err := auth.NewJWTTokenManager(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	services, err := initializeApplicationServices(cfg, repos, lookupCache, documentConnector, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	m := metrics.New()
	jobs, err := scheduler.NewScheduler(&cfg.Scheduler, services.Invoices, m, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &appDependencies{
		db:        db,
		services:  services,
		tokens:    tokens,
		metrics:   m,
		scheduler: jobs,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	repos *persistence.Repositories,
	lookupCache caching.Cache,
	documentConnector documents.DocumentConnector,
	tokens users.TokenManager,
	log logger.Logger,
) (*v1.Services, error) {
	svc := &v1.Services{}
	var err error

	if svc.Auth, err = app.NewAuthService(repos.Users, auth.NewBcryptHasher(bcrypt.DefaultCost), tokens, log); err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	if svc.Users, err = app.NewUserService(repos.Users, log); err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	if svc.Modules, err = app.NewServiceModuleService(repos.Modules, log); err != nil {
		return nil, fmt.Errorf("failed to create service module service: %w", err)
	}
	if svc.Agencies, err = app.NewAgencyService(repos.Agencies, log); err != nil {
		return nil, fmt.Errorf("failed to create agency service: %w", err)
	}
	if svc.Wallets, err = app.NewWalletService(repos.Wallets, repos.Transactor, cfg.Billing.Currency, log); err != nil {
		return nil, fmt.Errorf("failed to create wallet service: %w", err)
	}
	if svc.Invoices, err = app.NewInvoiceService(repos.Invoices, repos.Payments, svc.Wallets, repos.Transactor, &cfg.Billing, log); err != nil {
		return nil, fmt.Errorf("failed to create invoice service: %w", err)
	}

	maxDocumentSize := int64(cfg.Storage.MaxSizeMB) << 20
	if svc.Applications, err = app.NewServiceApplicationService(
		repos.Applications, repos.Modules, repos.Agencies,
		svc.Wallets, documentConnector, repos.Transactor,
		maxDocumentSize, log,
	); err != nil {
		return nil, fmt.Errorf("failed to create application service: %w", err)
	}
	if svc.Quotes, err = app.NewServiceQuoteService(
		repos.Quotes, repos.Applications, repos.Modules, repos.Agencies,
		svc.Invoices, repos.Transactor, log,
	); err != nil {
		return nil, fmt.Errorf("failed to create quote service: %w", err)
	}

	if svc.Blog, err = app.NewBlogService(repos.Posts, log); err != nil {
		return nil, fmt.Errorf("failed to create blog service: %w", err)
	}
	if svc.Pages, err = app.NewPageService(repos.Pages, log); err != nil {
		return nil, fmt.Errorf("failed to create page service: %w", err)
	}
	if svc.Menus, err = app.NewMenuService(repos.Menus, log); err != nil {
		return nil, fmt.Errorf("failed to create menu service: %w", err)
	}
	if svc.Ads, err = app.NewAdService(repos.Ads, lookupCache, cfg.Cache.DefaultTTL, log); err != nil {
		return nil, fmt.Errorf("failed to create ad service: %w", err)
	}
	if svc.Seo, err = app.NewSeoService(repos.Seo, lookupCache, cfg.Cache.DefaultTTL, log); err != nil {
		return nil, fmt.Errorf("failed to create seo service: %w", err)
	}
	if svc.Airports, err = app.NewAirportService(repos.Airports, lookupCache, cfg.Cache.DefaultTTL, log); err != nil {
		return nil, fmt.Errorf("failed to create airport service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return svc, nil
}

// startServerWithGracefulShutdown starts the HTTP server and the billing jobs and stops both on SIGINT or SIGTERM
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.New()
	r.Use(gin.Recovery(), v1.RequestLogger(log), v1.Metrics(deps.metrics))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services, v1.RouterOptions{
		Tokens:            deps.tokens,
		RateLimiter:       v1.NewRateLimiter(&cfg.RateLimit),
		Metrics:           deps.metrics,
		Ping:              func(ctx context.Context) error { return persistence.Ping(ctx, deps.db) },
		DefaultTaxPercent: cfg.Billing.TaxPercent,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	if cfg.Scheduler.Enabled {
		deps.scheduler.Start()
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if cfg.Scheduler.Enabled {
		if err := deps.scheduler.Stop(ctx); err != nil {
			log.Warn("Scheduler did not stop in time: ", err)
		}
	}

	log.Info("Server stopped gracefully")
	return nil
}
