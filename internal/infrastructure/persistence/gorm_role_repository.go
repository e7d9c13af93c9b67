package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/infrastructure/persistence/models"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultRoles is the role catalogue every deployment starts with.
var DefaultRoles = []users.Role{
	{Name: users.RoleAdmin, Description: "System administrator"},
	{Name: users.RoleOwner, Description: "Restaurant owner"},
	{Name: users.RoleEmployee, Description: "Restaurant employee"},
	{Name: users.RoleClient, Description: "Client"},
}

type gormRoleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRoleRepository creates a new GORM-based RoleRepository implementation
func NewGormRoleRepository(db *gorm.DB, logger logger.Logger) (users.RoleRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	return &gormRoleRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRoleRepository) FindByID(ctx context.Context, roleID int64) (*users.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("role with id %d: %w", roleID, users.ErrRoleNotFound)
		}
		return nil, fmt.Errorf("failed to fetch role with id %d: %w", roleID, err)
	}
	return model.ToDomain(), nil
}

func (r *gormRoleRepository) FindByName(ctx context.Context, name string) (*users.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("role %s: %w", name, users.ErrRoleNotFound)
		}
		return nil, fmt.Errorf("failed to fetch role %s: %w", name, err)
	}
	return model.ToDomain(), nil
}

func (r *gormRoleRepository) List(ctx context.Context) ([]*users.Role, error) {
	var modelList []*models.RoleModel
	if err := r.db.WithContext(ctx).Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	roles := make([]*users.Role, len(modelList))
	for i, m := range modelList {
		roles[i] = m.ToDomain()
	}
	return roles, nil
}

// Migrate creates or updates the schema of every table the service owns.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.RoleModel{},
		&models.UserModel{},
		&models.CredentialModel{},
		&models.EmployeeRestaurantModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SeedRoles inserts the default roles that are missing. Existing rows are left untouched.
func SeedRoles(ctx context.Context, db *gorm.DB) error {
	for _, role := range DefaultRoles {
		model := &models.RoleModel{}
		model.FromDomain(&role)

		err := db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(model).Error
		if err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role.Name, err)
		}
	}
	return nil
}
