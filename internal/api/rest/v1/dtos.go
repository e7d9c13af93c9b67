package v1

import (
	"fmt"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

var requestValidator = mustValidator()

func mustValidator() *validator.Validate {
	v, err := validators.New()
	if err != nil {
		panic(err)
	}
	return v
}

var requestMessages = validators.FieldMessages{
	"firstName.notblank":        "First name is required",
	"lastName.notblank":         "Last name is required",
	"identityDocument.notblank": "Identity document is required",
	"phone.notblank":            "Phone is required",
	"birthDate.required":        "Birth date is required",
	"birthDate.datetime":        "Birth date must use the format YYYY-MM-DD",
	"email.notblank":            "Email is required",
	"email.email":               "Invalid email format",
	"password.notblank":         "Password is required",
	"restaurantId.required":     "Restaurant ID is required",
}

func validateRequest(request interface{}) error {
	return validators.Collect(requestValidator.Struct(request), requestMessages)
}

// CreateOwnerRequest is the payload for registering a restaurant owner
type CreateOwnerRequest struct {
	FirstName        string `json:"firstName" validate:"notblank"`
	LastName         string `json:"lastName" validate:"notblank"`
	IdentityDocument string `json:"identityDocument" validate:"notblank"`
	Phone            string `json:"phone" validate:"notblank"`
	BirthDate        string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Email            string `json:"email" validate:"notblank"`
	Password         string `json:"password" validate:"notblank"`
}

// Validate checks the required fields of the request
func (r *CreateOwnerRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain maps the request to a user
func (r *CreateOwnerRequest) ToDomain() (*users.User, error) {
	birthDate, err := parseBirthDate(r.BirthDate)
	if err != nil {
		return nil, err
	}
	return &users.User{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		IdentityDocument: r.IdentityDocument,
		Phone:            r.Phone,
		BirthDate:        birthDate,
		Email:            r.Email,
		Password:         r.Password,
	}, nil
}

// CreateEmployeeRequest is the payload for registering an employee of a restaurant
type CreateEmployeeRequest struct {
	FirstName        string `json:"firstName" validate:"notblank"`
	LastName         string `json:"lastName" validate:"notblank"`
	IdentityDocument string `json:"identityDocument" validate:"notblank"`
	Phone            string `json:"phone" validate:"notblank"`
	BirthDate        string `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Email            string `json:"email" validate:"notblank"`
	Password         string `json:"password" validate:"notblank"`
	RestaurantID     *int64 `json:"restaurantId" validate:"required"`
}

// Validate checks the required fields of the request
func (r *CreateEmployeeRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain maps the request to a user
func (r *CreateEmployeeRequest) ToDomain() (*users.User, error) {
	birthDate, err := parseBirthDate(r.BirthDate)
	if err != nil {
		return nil, err
	}
	return &users.User{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		IdentityDocument: r.IdentityDocument,
		Phone:            r.Phone,
		BirthDate:        birthDate,
		Email:            r.Email,
		Password:         r.Password,
		RestaurantID:     r.RestaurantID,
	}, nil
}

// CreateClientRequest is the payload of the public client signup
type CreateClientRequest struct {
	FirstName        string `json:"firstName" validate:"notblank"`
	LastName         string `json:"lastName" validate:"notblank"`
	IdentityDocument string `json:"identityDocument" validate:"notblank"`
	Phone            string `json:"phone" validate:"notblank"`
	BirthDate        string `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Email            string `json:"email" validate:"notblank"`
	Password         string `json:"password" validate:"notblank"`
}

// Validate checks the required fields of the request
func (r *CreateClientRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain maps the request to a user
func (r *CreateClientRequest) ToDomain() (*users.User, error) {
	birthDate, err := parseBirthDate(r.BirthDate)
	if err != nil {
		return nil, err
	}
	return &users.User{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		IdentityDocument: r.IdentityDocument,
		Phone:            r.Phone,
		BirthDate:        birthDate,
		Email:            r.Email,
		Password:         r.Password,
	}, nil
}

// LoginRequest is the payload of the login endpoint
type LoginRequest struct {
	Email    string `json:"email" validate:"notblank,email"`
	Password string `json:"password" validate:"notblank"`
}

// Validate checks the required fields of the request
func (r *LoginRequest) Validate() error {
	return validateRequest(r)
}

func parseBirthDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("invalid birth date %q: %w", value, err)
	}
	return &t, nil
}

// UserResponse is the public representation of a user
type UserResponse struct {
	ID               int64   `json:"id"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	IdentityDocument string  `json:"identityDocument"`
	Phone            string  `json:"phone"`
	BirthDate        *string `json:"birthDate,omitempty"`
	Email            string  `json:"email"`
	Role             string  `json:"role"`
	RestaurantID     *int64  `json:"restaurantId,omitempty"`
}

func toUserResponse(u *users.User) UserResponse {
	response := UserResponse{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		IdentityDocument: u.IdentityDocument,
		Phone:            u.Phone,
		Email:            u.Email,
		Role:             u.RoleName(),
		RestaurantID:     u.RestaurantID,
	}
	if u.BirthDate != nil {
		bd := u.BirthDate.Format(time.DateOnly)
		response.BirthDate = &bd
	}
	return response
}

// AuthResponse is returned by a successful login
type AuthResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ErrorResponse is the body of every error answer
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Details   map[string]string `json:"details,omitempty"`
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
