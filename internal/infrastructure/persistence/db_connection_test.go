//go:build unit
// +build unit

package persistence

import (
	"context"
	"testing"

	"github.com/Nekstoreo/usuarios-service/internal/infrastructure/persistence/models"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestMigrate_InMemorySQLite(t *testing.T) {
	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDB(db) })

	require.NoError(t, Migrate(db))
	require.NoError(t, SeedRoles(context.Background(), db))

	for _, m := range []interface{}{
		&models.RoleModel{},
		&models.UserModel{},
		&models.CredentialModel{},
		&models.EmployeeRestaurantModel{},
	} {
		assert.True(t, db.Migrator().HasTable(m))
	}

	var count int64
	require.NoError(t, db.Model(&models.RoleModel{}).Count(&count).Error)
	assert.Equal(t, int64(len(DefaultRoles)), count)
}

func TestGormConfig(t *testing.T) {
	cfg := gormConfig()

	assert.True(t, cfg.TranslateError)
	assert.Equal(t, gormlogger.Default.LogMode(gormlogger.Silent), cfg.Logger)
}
