package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/config"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/logger"
)

// AdminBootstrapper creates the configured administrator account.
type AdminBootstrapper struct {
	userRepo users.UserRepository
	roleRepo users.RoleRepository
	hasher   users.PasswordHasher
	logger   logger.Logger
}

// NewAdminBootstrapper creates a new AdminBootstrapper instance
func NewAdminBootstrapper(
	userRepo users.UserRepository,
	roleRepo users.RoleRepository,
	hasher users.PasswordHasher,
	logger logger.Logger,
) *AdminBootstrapper {
	return &AdminBootstrapper{
		userRepo: userRepo,
		roleRepo: roleRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// EnsureAdmin creates the administrator unless a user with its email exists.
// It reports whether a user was created. The ADMIN role must already be seeded.
func (b *AdminBootstrapper) EnsureAdmin(ctx context.Context, settings *config.AdminSettings) (bool, error) {
	b.logger.Info("Initializing system data...")

	exists, err := b.userRepo.ExistsByEmail(ctx, settings.Email)
	if err != nil {
		return false, fmt.Errorf("failed to check admin email: %w", err)
	}
	if exists {
		b.logger.Info("Admin user already exists, skipping creation")
		return false, nil
	}

	role, err := b.roleRepo.FindByName(ctx, users.RoleAdmin)
	if err != nil {
		if errors.Is(err, users.ErrRoleNotFound) {
			return false, users.NewError(users.ErrRoleNotFound, "ADMIN role not found. Make sure the roles have been seeded.")
		}
		return false, fmt.Errorf("failed to resolve ADMIN role: %w", err)
	}

	var birthDate *time.Time
	if settings.BirthDate != "" {
		parsed, err := time.Parse(time.DateOnly, settings.BirthDate)
		if err != nil {
			return false, fmt.Errorf("invalid admin birth date %q: %w", settings.BirthDate, err)
		}
		birthDate = &parsed
	}

	hash, err := b.hasher.Hash(settings.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &users.User{
		FirstName:        settings.FirstName,
		LastName:         settings.LastName,
		IdentityDocument: settings.IdentityDocument,
		Phone:            settings.Phone,
		BirthDate:        birthDate,
		Email:            settings.Email,
		Password:         hash,
		Role:             role,
	}

	if _, err := b.userRepo.Save(ctx, admin); err != nil {
		return false, fmt.Errorf("failed to save admin user: %w", err)
	}

	b.logger.Info("Default admin user created successfully")
	return true, nil
}
