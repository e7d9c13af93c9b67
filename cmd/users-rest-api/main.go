// cmd/users-rest-api/main.go
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

	v1 "github.com/Nekstoreo/usuarios-service/internal/api/rest/v1"
	"github.com/Nekstoreo/usuarios-service/internal/app"
	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/infrastructure/cache"
	"github.com/Nekstoreo/usuarios-service/internal/infrastructure/persistence"
	"github.com/Nekstoreo/usuarios-service/internal/infrastructure/security"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/config"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/logger"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/metrics"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Default paths are relative to the repository root.
const (
	defaultConfigPath = "configs/rest-app.yaml"
	openAPIFile       = "api/openapi/v1/users.yaml"
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
		configPath = defaultConfigPath
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

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db          *gorm.DB
	userCache   users.UserCache
	userService users.UserService
	authService users.AuthService
	metrics     *metrics.Metrics
}

func (d *appDependencies) close(log logger.Logger) {
	if closer, ok := d.userCache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Warn("failed to close cache: ", err)
		}
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn("failed to close database: ", err)
	}
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	ctx := context.Background()

	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations and seed the role catalogue
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	if err := persistence.SeedRoles(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to seed roles: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	roleRepo, err := persistence.NewGormRoleRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create role repository: %w", err)
	}

	// Initialize security adapters
	hasher, err := security.NewBcryptHasher(&cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	tokens, err := security.NewJWTProvider(&cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to create token provider: %w", err)
	}

	// Create the administrator on first start
	bootstrapper := app.NewAdminBootstrapper(userRepo, roleRepo, hasher, log)
	if _, err := bootstrapper.EnsureAdmin(ctx, &cfg.Admin); err != nil {
		return nil, fmt.Errorf("failed to ensure admin account: %w", err)
	}

	userCache, err := cache.NewUserCache(&cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to create user cache: %w", err)
	}
	log.Info("User cache backend: ", cfg.Cache.Backend)

	// Initialize services
	userService, err := app.NewUserService(userRepo, roleRepo, hasher, userCache, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	authService, err := app.NewAuthService(userRepo, hasher, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		db:          db,
		userCache:   userCache,
		userService: userService,
		authService: authService,
		metrics:     metrics.New(),
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.New()
	r.Use(gin.Recovery())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", v1.CorrelationIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", v1.CorrelationIDHeader},
		AllowCredentials: !allowsAnyOrigin(cfg.AllowOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, v1.RouteDependencies{
		UserService:  deps.userService,
		AuthService:  deps.authService,
		Metrics:      deps.metrics,
		Logger:       log,
		LoginLimiter: v1.NewLoginLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		OpenAPIFile:  openAPIFile,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
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

	log.Info("Server stopped gracefully")
	return nil
}

// allowsAnyOrigin reports whether origins is a wildcard. Credentials cannot be
// allowed together with a wildcard origin.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return len(origins) == 0
}
