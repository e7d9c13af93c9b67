package v1

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/logger"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Context keys and headers
const (
	principalKey        = "principal"
	loggerKey           = "logger"
	correlationIDKey    = "correlation_id"
	CorrelationIDHeader = "X-Correlation-ID"
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// Principal identifies the authenticated caller of a request
type Principal struct {
	UserID int64
	Email  string
	Role   string
}

// PrincipalFrom returns the authenticated caller, if any
func PrincipalFrom(ctx *gin.Context) (*Principal, bool) {
	v, ok := ctx.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}

// requestLogger returns the request scoped logger set by CorrelationIDMiddleware,
// falling back to fallback.
func requestLogger(ctx *gin.Context, fallback logger.Logger) logger.Logger {
	if v, ok := ctx.Get(loggerKey); ok {
		if l, ok := v.(logger.Logger); ok {
			return l
		}
	}
	return fallback
}

// CorrelationIDMiddleware propagates or generates a correlation id and stores a
// logger tagged with it on the context.
func CorrelationIDMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		corrID := ctx.GetHeader(CorrelationIDHeader)
		if corrID == "" {
			corrID = uuid.New().String()
		}

		ctx.Set(correlationIDKey, corrID)
		ctx.Header(CorrelationIDHeader, corrID)
		ctx.Set(loggerKey, log.With("correlation_id", corrID))

		ctx.Next()
	}
}

// MetricsMiddleware records request count, latency and in-flight requests.
// Routes are labelled by their template so path parameters do not explode cardinality.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := fmt.Sprintf("%dxx", ctx.Writer.Status()/100)

		m.HTTPRequestsTotal.WithLabelValues(ctx.Request.Method, route, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(ctx.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// AuthMiddleware resolves a bearer token into a Principal. Requests without a
// bearer token, or with one that does not validate, continue unauthenticated
// and are turned away by RequireAuthenticated or RequireRole where needed.
func AuthMiddleware(authService users.AuthService, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader(authorizationHeader)
		if !strings.HasPrefix(header, bearerPrefix) {
			ctx.Next()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		user, err := authService.ValidateToken(ctx.Request.Context(), token)
		if err != nil {
			requestLogger(ctx, log).Debug("bearer token rejected: ", err)
			ctx.Next()
			return
		}

		ctx.Set(principalKey, &Principal{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.RoleName(),
		})
		ctx.Next()
	}
}

// RequireAuthenticated answers 401 unless a Principal is present.
func RequireAuthenticated() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := PrincipalFrom(ctx); !ok {
			writeError(ctx, http.StatusUnauthorized, titleUnauthorized, messageUnauthenticated, nil)
			return
		}
		ctx.Next()
	}
}

// RequireRole answers 401 for anonymous callers and 403 for callers holding
// none of the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, ok := PrincipalFrom(ctx)
		if !ok {
			writeError(ctx, http.StatusUnauthorized, titleUnauthorized, messageUnauthenticated, nil)
			return
		}
		for _, role := range roles {
			if principal.Role == role {
				ctx.Next()
				return
			}
		}
		writeError(ctx, http.StatusForbidden, titleForbidden, messageForbidden, nil)
	}
}

// LoginRateLimitMiddleware answers 429 when the login token bucket is exhausted. Disabled when limiter is nil.
func LoginRateLimitMiddleware(limiter *rate.Limiter, m *metrics.Metrics, log logger.Logger) gin.HandlerFunc {
	if limiter == nil {
		return func(ctx *gin.Context) { ctx.Next() }
	}
	return func(ctx *gin.Context) {
		if !limiter.Allow() {
			requestLogger(ctx, log).Debug("rate limit denied")
			m.RecordLogin(metrics.LoginRateLimited)
			writeError(ctx, http.StatusTooManyRequests, titleTooMany, messageTooManyRequests, nil)
			return
		}
		ctx.Next()
	}
}
