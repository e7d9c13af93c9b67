package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/logger"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

// Error titles
const (
	titleValidation   = "Validation Error"
	titleConflict     = "Conflict"
	titleNotFound     = "Not Found"
	titleUnauthorized = "Unauthorized"
	titleForbidden    = "Forbidden"
	titleTooMany      = "Too Many Requests"
	titleInternal     = "Internal Server Error"
)

const (
	messageForbidden       = "You don't have permission to access this resource"
	messageUnauthenticated = "Authentication is required to access this resource"
	messageInternal        = "An unexpected error occurred. Please try again later."
	messageMalformedBody   = "Malformed request body"
	messageTooManyRequests = "Too many requests. Please try again later."
)

// writeError aborts the request with an ErrorResponse
func writeError(ctx *gin.Context, status int, title, message string, details map[string]string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     title,
		Message:   message,
		Path:      ctx.Request.URL.Path,
		Details:   details,
	})
}

// respondWithError maps err onto the HTTP status and message clients see.
// Errors that are not domain errors are logged and hidden behind a generic 500.
func respondWithError(ctx *gin.Context, err error, log logger.Logger) {
	var violations *validators.Violations
	if errors.As(err, &violations) {
		writeError(ctx, http.StatusBadRequest, titleValidation, violations.Message, violations.Details)
		return
	}

	var domainErr *users.Error
	message := err.Error()
	if errors.As(err, &domainErr) {
		message = domainErr.Message
	}

	switch {
	case users.IsValidationError(err):
		writeError(ctx, http.StatusBadRequest, titleValidation, message, nil)
	case errors.Is(err, users.ErrUserAlreadyExists):
		writeError(ctx, http.StatusConflict, titleConflict, message, nil)
	case errors.Is(err, users.ErrUserNotFound), errors.Is(err, users.ErrRoleNotFound):
		writeError(ctx, http.StatusNotFound, titleNotFound, message, nil)
	case errors.Is(err, users.ErrInvalidCredentials):
		writeError(ctx, http.StatusUnauthorized, titleUnauthorized, message, nil)
	case errors.Is(err, users.ErrUnauthorized):
		writeError(ctx, http.StatusForbidden, titleForbidden, messageForbidden, nil)
	default:
		requestLogger(ctx, log).Error(fmt.Sprintf("%s %s failed: %v", ctx.Request.Method, ctx.Request.URL.Path, err))
		writeError(ctx, http.StatusInternalServerError, titleInternal, messageInternal, nil)
	}
}
