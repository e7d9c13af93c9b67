package security

import (
	"fmt"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/config"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the configured cost, falling back to
// bcrypt.DefaultCost when none is set.
func NewBcryptHasher(settings *config.PasswordSettings) (users.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	if settings != nil {
		if err := settings.Validate(); err != nil {
			return nil, fmt.Errorf("invalid password settings: %w", err)
		}
		if settings.BcryptCost != 0 {
			cost = settings.BcryptCost
		}
	}
	return &BcryptHasher{cost: cost}, nil
}

// Hash returns the bcrypt hash of raw
func (h *BcryptHasher) Hash(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Matches reports whether raw is the password behind hash
func (h *BcryptHasher) Matches(raw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
