package v1

import (
	"net/http"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/logger"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RouteDependencies groups what SetupRoutes wires into the handlers.
type RouteDependencies struct {
	UserService  users.UserService
	AuthService  users.AuthService
	Metrics      *metrics.Metrics
	Logger       logger.Logger
	LoginLimiter *rate.Limiter
	// OpenAPIFile is served at /api/v1/users/openapi.yaml when set.
	OpenAPIFile string
}

// SetupRoutes sets up all the API routes for version 1 together with the
// health and metrics endpoints.
func SetupRoutes(r *gin.Engine, deps RouteDependencies) {
	r.Use(
		CorrelationIDMiddleware(deps.Logger),
		MetricsMiddleware(deps.Metrics),
		AuthMiddleware(deps.AuthService, deps.Logger),
	)

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, HealthResponse{Status: "UP"})
	})
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	v1 := r.Group(BasePath) // lookup in version file

	// Auth Routes
	authHandler := NewAuthHandler(deps.AuthService, deps.Metrics, deps.Logger)
	v1.POST("/auth/login", LoginRateLimitMiddleware(deps.LoginLimiter, deps.Metrics, deps.Logger), authHandler.Login)

	// Users Routes
	userHandler := NewUserHandler(deps.UserService, deps.Metrics, deps.Logger)
	usersGroup := v1.Group("/users")
	usersGroup.POST("/owners", RequireRole(users.RoleAdmin), userHandler.CreateOwner)
	usersGroup.POST("/employees", RequireRole(users.RoleOwner), userHandler.CreateEmployee)
	usersGroup.POST("/clients", userHandler.CreateClient)
	usersGroup.GET("/:id", RequireAuthenticated(), userHandler.GetUserByID)

	if deps.OpenAPIFile != "" {
		usersGroup.GET("/openapi.yaml", func(ctx *gin.Context) {
			ctx.File(deps.OpenAPIFile)
		})
	}
}

// NewLoginLimiter builds the token bucket for the login endpoint, or nil when
// requestsPerSecond is not positive.
func NewLoginLimiter(requestsPerSecond float64, burst int) *rate.Limiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}
