package v1

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/logger"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for handling user-related operations
type UserHandler interface {
	CreateOwner(ctx *gin.Context)
	CreateEmployee(ctx *gin.Context)
	CreateClient(ctx *gin.Context)
	GetUserByID(ctx *gin.Context)
}

type userHandler struct {
	userService users.UserService
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService, m *metrics.Metrics, logger logger.Logger) UserHandler {
	return &userHandler{
		userService: userService,
		metrics:     m,
		logger:      logger,
	}
}

// userRequest is implemented by every account creation payload
type userRequest interface {
	Validate() error
	ToDomain() (*users.User, error)
}

// CreateOwner handles the POST request to register a restaurant owner
// @Summary Create owner
// @Description Creates a user account with OWNER role. Only ADMIN can perform this action.
// @Tags Users
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param requestBody body CreateOwnerRequest true "Owner data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/owners [post]
func (handler *userHandler) CreateOwner(ctx *gin.Context) {
	var request CreateOwnerRequest
	handler.create(ctx, &request, users.RoleOwner, handler.userService.CreateOwner)
}

// CreateEmployee handles the POST request to register an employee
// @Summary Create employee
// @Description Creates a user account with EMPLOYEE role bound to a restaurant. Only OWNER can perform this action.
// @Tags Users
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param requestBody body CreateEmployeeRequest true "Employee data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/employees [post]
func (handler *userHandler) CreateEmployee(ctx *gin.Context) {
	var request CreateEmployeeRequest
	handler.create(ctx, &request, users.RoleEmployee, handler.userService.CreateEmployee)
}

// CreateClient handles the public signup of a client
// @Summary Create client
// @Description Creates a user account with CLIENT role.
// @Tags Users
// @Accept json
// @Produce json
// @Param requestBody body CreateClientRequest true "Client data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/clients [post]
func (handler *userHandler) CreateClient(ctx *gin.Context) {
	var request CreateClientRequest
	handler.create(ctx, &request, users.RoleClient, handler.userService.CreateClient)
}

// GetUserByID handles the GET request to fetch a user by its ID
// @Summary Get user by ID
// @Description Retrieves a user by its ID
// @Tags Users
// @Produce json
// @Security bearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (handler *userHandler) GetUserByID(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(ctx, http.StatusBadRequest, titleValidation, "User ID must be a positive integer", nil)
		return
	}

	user, err := handler.userService.GetUserByID(ctx.Request.Context(), userID)
	if err != nil {
		respondWithError(ctx, err, handler.logger)
		return
	}

	ctx.JSON(http.StatusOK, toUserResponse(user))
}

func (handler *userHandler) create(
	ctx *gin.Context,
	request userRequest,
	roleName string,
	createFn func(ctx context.Context, user *users.User) (*users.User, error),
) {
	if err := ctx.ShouldBindJSON(request); err != nil {
		writeError(ctx, http.StatusBadRequest, titleValidation, messageMalformedBody, nil)
		return
	}

	if err := request.Validate(); err != nil {
		respondWithError(ctx, err, handler.logger)
		return
	}

	user, err := request.ToDomain()
	if err != nil {
		writeError(ctx, http.StatusBadRequest, titleValidation, "Birth date must use the format YYYY-MM-DD", nil)
		return
	}

	created, err := createFn(ctx.Request.Context(), user)
	if err != nil {
		respondWithError(ctx, err, handler.logger)
		return
	}

	handler.metrics.RecordUserCreated(roleName)
	ctx.JSON(http.StatusCreated, toUserResponse(created))
}
