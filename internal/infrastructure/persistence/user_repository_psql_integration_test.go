//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a local PostgreSQL instance (user/password postgres on port 5432).
func TestGormUserRepository_Postgres(t *testing.T) {
	tc := SetupTestDB(t, config.PostgresDbType)
	ctx := context.Background()

	saved := CreateTestUser(t, tc, 1, users.RoleOwner)

	found, err := tc.UserRepo.FindByEmail(ctx, saved.Email)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, users.RoleOwner, found.RoleName())

	dup := *saved
	dup.ID = 0
	dup.Email = "another@restaurant.com"
	_, err = tc.UserRepo.Save(ctx, &dup)
	assert.ErrorIs(t, err, users.ErrUserAlreadyExists)
}
