//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/config"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB       *gorm.DB
	UserRepo users.UserRepository
	RoleRepo users.RoleRepository
}

// SetupTestDB initializes a migrated and seeded test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")
	require.NoError(t, SeedRoles(context.Background(), db), "Failed to seed roles")

	logger := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	roleRepo, err := NewGormRoleRepository(db, logger)
	require.NoError(t, err, "Failed to create role repository")

	return &TestContext{
		DB:       db,
		UserRepo: userRepo,
		RoleRepo: roleRepo,
	}
}

// CreateTestUser stores a valid user with the given role
func CreateTestUser(t *testing.T, tc *TestContext, seq int, roleName string) *users.User {
	t.Helper()

	role, err := tc.RoleRepo.FindByName(context.Background(), roleName)
	require.NoError(t, err)

	user := testutil.NewTestUser(seq)
	user.Password = "$2a$10$storedhash"
	user.Role = role

	saved, err := tc.UserRepo.Save(context.Background(), user)
	require.NoError(t, err)
	return saved
}
