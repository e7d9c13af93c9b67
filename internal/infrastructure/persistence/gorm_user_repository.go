package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/infrastructure/persistence/models"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Save inserts the user, its credential and, for employees, its restaurant
// binding in a single transaction.
func (r *gormUserRepository) Save(ctx context.Context, user *users.User) (*users.User, error) {
	if user.Role == nil || user.Role.ID == 0 {
		return nil, fmt.Errorf("user must reference a stored role")
	}

	model := &models.UserModel{}
	model.FromDomain(user)
	credential := model.Credential
	restaurant := model.EmployeeRestaurant
	model.Credential = nil
	model.EmployeeRestaurant = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Role").Create(model).Error; err != nil {
			return err
		}

		credential.UserID = model.ID
		if err := tx.Create(credential).Error; err != nil {
			return err
		}

		if restaurant != nil {
			restaurant.UserID = model.ID
			if err := tx.Create(restaurant).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, users.NewError(users.ErrUserAlreadyExists, "A user already exists with the provided email or document")
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	model.Credential = credential
	model.EmployeeRestaurant = restaurant

	saved := model.ToDomain()
	saved.Role = user.Role
	r.logger.Info("Created user with id ", saved.ID)
	return saved, nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, userID int64) (*users.User, error) {
	var model models.UserModel
	if err := r.withAssociations(ctx).First(&model, "users.id = ?", userID).Error; err != nil {
		return nil, r.notFound(err, "user with id %d", userID)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	var model models.UserModel
	err := r.withAssociations(ctx).
		Joins("JOIN credentials ON credentials.user_id = users.id").
		Where("credentials.email = ?", email).
		First(&model).Error
	if err != nil {
		return nil, r.notFound(err, "user with email %s", email)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) FindByIdentityDocument(ctx context.Context, document string) (*users.User, error) {
	var model models.UserModel
	if err := r.withAssociations(ctx).First(&model, "users.identity_document = ?", document).Error; err != nil {
		return nil, r.notFound(err, "user with document %s", document)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CredentialModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (r *gormUserRepository) ExistsByIdentityDocument(ctx context.Context, document string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("identity_document = ?", document).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check identity document: %w", err)
	}
	return count > 0, nil
}

func (r *gormUserRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Role").
		Preload("Credential").
		Preload("EmployeeRestaurant")
}

func (r *gormUserRepository) notFound(err error, format string, args ...interface{}) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, users.ErrUserNotFound)
	}
	return fmt.Errorf("failed to fetch %s: %w", what, err)
}
