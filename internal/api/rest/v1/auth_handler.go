package v1

import (
	"errors"
	"net/http"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/logger"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for handling authentication
type AuthHandler interface {
	Login(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, m *metrics.Metrics, logger logger.Logger) AuthHandler {
	return &authHandler{
		authService: authService,
		metrics:     m,
		logger:      logger,
	}
}

// Login handles the POST request to authenticate with email and password
// @Summary Login
// @Description Authenticates a user with email and password and returns a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param requestBody body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, titleValidation, messageMalformedBody, nil)
		return
	}

	if err := request.Validate(); err != nil {
		respondWithError(ctx, err, handler.logger)
		return
	}

	session, err := handler.authService.Authenticate(ctx.Request.Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			handler.metrics.RecordLogin(metrics.LoginRejected)
		} else {
			handler.metrics.RecordLogin(metrics.LoginError)
		}
		respondWithError(ctx, err, handler.logger)
		return
	}

	handler.metrics.RecordLogin(metrics.LoginSuccess)
	ctx.JSON(http.StatusOK, AuthResponse{
		Token:     session.Token,
		TokenType: session.TokenType,
		UserID:    session.UserID,
		Email:     session.Email,
		Role:      session.Role,
		ExpiresAt: session.ExpiresAt,
	})
}
