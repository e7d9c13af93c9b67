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

func TestGormRoleRepository(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	roles, err := tc.RoleRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, roles, len(DefaultRoles))
	assert.Equal(t, users.RoleAdmin, roles[0].Name)

	owner, err := tc.RoleRepo.FindByName(ctx, users.RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, "Restaurant owner", owner.Description)

	byID, err := tc.RoleRepo.FindByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner, byID)

	_, err = tc.RoleRepo.FindByName(ctx, "CHEF")
	assert.ErrorIs(t, err, users.ErrRoleNotFound)

	_, err = tc.RoleRepo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, users.ErrRoleNotFound)
}

func TestSeedRoles_Idempotent(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, SeedRoles(context.Background(), tc.DB))
	require.NoError(t, SeedRoles(context.Background(), tc.DB))

	roles, err := tc.RoleRepo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, len(DefaultRoles))
}
