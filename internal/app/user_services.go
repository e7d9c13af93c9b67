package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/logger"
)

// userService implements the users.UserService interface
type userService struct {
	userRepo users.UserRepository
	roleRepo users.RoleRepository
	hasher   users.PasswordHasher
	cache    users.UserCache
	logger   logger.Logger
	now      func() time.Time
}

// NewUserService creates a new userService instance. cache may be nil, in
// which case lookups always hit the repository.
func NewUserService(
	userRepo users.UserRepository,
	roleRepo users.RoleRepository,
	hasher users.PasswordHasher,
	cache users.UserCache,
	logger logger.Logger,
) (users.UserService, error) {
	if userRepo == nil || roleRepo == nil || hasher == nil {
		return nil, fmt.Errorf("user service requires a user repository, a role repository and a password hasher")
	}
	return &userService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		hasher:   hasher,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// CreateOwner registers a restaurant owner.
func (s *userService) CreateOwner(ctx context.Context, user *users.User) (*users.User, error) {
	return s.create(ctx, user, users.RoleOwner, func(u *users.User) error {
		if err := u.ValidateContactFields(); err != nil {
			return err
		}
		return u.ValidateAge(s.now())
	})
}

// CreateEmployee registers an employee. The restaurant is mandatory, the birth date is not.
func (s *userService) CreateEmployee(ctx context.Context, user *users.User) (*users.User, error) {
	return s.create(ctx, user, users.RoleEmployee, func(u *users.User) error {
		if err := u.ValidateContactFields(); err != nil {
			return err
		}
		return users.ValidateRestaurant(u.RestaurantID)
	})
}

// CreateClient registers a client. Any restaurant binding in the input is dropped.
func (s *userService) CreateClient(ctx context.Context, user *users.User) (*users.User, error) {
	if user != nil {
		c := *user
		c.RestaurantID = nil
		user = &c
	}
	return s.create(ctx, user, users.RoleClient, func(u *users.User) error {
		return u.ValidateContactFields()
	})
}

// GetUserByID retrieves a user by ID, consulting the cache first.
func (s *userService) GetUserByID(ctx context.Context, userID int64) (*users.User, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.logger.Warn(fmt.Sprintf("cache lookup for user %d failed: %v", userID, err))
		} else if ok {
			return cached.WithoutPassword(), nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.NewError(users.ErrUserNotFound, "User not found with id: %d", userID)
		}
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	user = user.WithoutPassword()
	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			s.logger.Warn(fmt.Sprintf("failed to cache user %d: %v", userID, err))
		}
	}

	return user, nil
}

// create runs validation, uniqueness checks, role resolution and hashing, in
// that order, and only then persists the user.
func (s *userService) create(ctx context.Context, user *users.User, roleName string, validate func(*users.User) error) (*users.User, error) {
	if user == nil {
		return nil, fmt.Errorf("user must not be nil")
	}

	if err := validate(user); err != nil {
		return nil, err
	}

	if err := s.ensureUnique(ctx, user.Email, user.IdentityDocument); err != nil {
		return nil, err
	}

	role, err := s.roleRepo.FindByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, users.ErrRoleNotFound) {
			return nil, users.NewError(users.ErrRoleNotFound, "Role %s does not exist in the system", roleName)
		}
		return nil, fmt.Errorf("failed to resolve role %s: %w", roleName, err)
	}

	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	toSave := *user
	toSave.ID = 0
	toSave.Role = role
	toSave.Password = hash

	saved, err := s.userRepo.Save(ctx, &toSave)
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info(fmt.Sprintf("created %s user with id %d", roleName, saved.ID))
	return saved.WithoutPassword(), nil
}

func (s *userService) ensureUnique(ctx context.Context, email, document string) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return users.NewError(users.ErrUserAlreadyExists, "A user already exists with email: %s", email)
	}

	exists, err = s.userRepo.ExistsByIdentityDocument(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to check identity document: %w", err)
	}
	if exists {
		return users.NewError(users.ErrUserAlreadyExists, "A user already exists with document: %s", document)
	}

	return nil
}
