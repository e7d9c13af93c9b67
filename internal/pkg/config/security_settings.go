package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// JWTSettings configures token signing. The secret must be at least 32 bytes,
// the minimum key length for HS256.
type JWTSettings struct {
	Secret     string        `mapstructure:"secret" validate:"required,min=32"`
	Expiration time.Duration `mapstructure:"expiration" validate:"required,gt=0"`
	Issuer     string        `mapstructure:"issuer"`
}

// Validate checks the JWT settings
func (s *JWTSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for JWTSettings: %w", err)
	}
	return nil
}

// PasswordSettings configures password hashing.
type PasswordSettings struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// Validate checks the password settings. A zero cost selects bcrypt's default.
func (s *PasswordSettings) Validate() error {
	if s.BcryptCost == 0 {
		return nil
	}
	if s.BcryptCost < bcrypt.MinCost || s.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// AdminSettings describes the administrator account created on first start.
type AdminSettings struct {
	Email            string `mapstructure:"email" validate:"required,email"`
	Password         string `mapstructure:"password" validate:"required,min=8"`
	FirstName        string `mapstructure:"first_name" validate:"required"`
	LastName         string `mapstructure:"last_name" validate:"required"`
	IdentityDocument string `mapstructure:"identity_document" validate:"required,numeric"`
	Phone            string `mapstructure:"phone" validate:"required,max=13"`
	BirthDate        string `mapstructure:"birth_date" validate:"required,datetime=2006-01-02"`
}

// Validate checks the admin settings
func (s *AdminSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AdminSettings: %w", err)
	}
	return nil
}

// RateLimitSettings configures the token bucket guarding the login endpoint.
// A zero RequestsPerSecond disables limiting.
type RateLimitSettings struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int     `mapstructure:"burst" validate:"gte=0"`
}

// Validate checks the rate limit settings
func (s *RateLimitSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}
	if s.RequestsPerSecond > 0 && s.Burst < 1 {
		return fmt.Errorf("burst must be at least 1 when rate limiting is enabled")
	}
	return nil
}
