//go:build unit
// +build unit

package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/infrastructure/security"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newRootCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "users-cli", SilenceUsage: true, SilenceErrors: true}
	rootCmd.PersistentFlags().String(ConfigFlag, "", "")
	require.NoError(t, InitSecurityCommands(rootCmd))

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	return rootCmd, out
}

func TestHashPasswordCmd(t *testing.T) {
	rootCmd, out := newRootCmd(t)
	rootCmd.SetArgs([]string{"hash-password", "--password", "s3cret-pass", "--cost", "4"})

	require.NoError(t, rootCmd.Execute())

	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-pass")))
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 4, cost)
}

func TestHashPasswordCmd_MissingPassword(t *testing.T) {
	rootCmd, _ := newRootCmd(t)
	rootCmd.SetArgs([]string{"hash-password"})

	assert.Error(t, rootCmd.Execute())
}

func TestInspectTokenCmd(t *testing.T) {
	provider, err := security.NewJWTProvider(&config.JWTSettings{
		Secret:     testSecret,
		Expiration: time.Hour,
		Issuer:     "usuarios-service",
	})
	require.NoError(t, err)

	token, _, err := provider.Generate(&users.User{
		ID:        7,
		FirstName: "Ana",
		LastName:  "Gomez",
		Email:     "ana@restaurant.com",
		Role:      &users.Role{Name: users.RoleOwner},
	})
	require.NoError(t, err)

	rootCmd, out := newRootCmd(t)
	rootCmd.SetArgs([]string{"inspect-token", "--token", token, "--secret", testSecret, "--issuer", "usuarios-service"})
	require.NoError(t, rootCmd.Execute())

	var report tokenReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "ana@restaurant.com", report.Subject)
	assert.Equal(t, int64(7), report.UserID)
	assert.Equal(t, users.RoleOwner, report.Role)
	assert.True(t, report.ExpiresAt.After(report.IssuedAt))
}

func TestInspectTokenCmd_WrongSecret(t *testing.T) {
	provider, err := security.NewJWTProvider(&config.JWTSettings{Secret: testSecret, Expiration: time.Hour})
	require.NoError(t, err)
	token, _, err := provider.Generate(&users.User{ID: 1, Email: "a@b.co"})
	require.NoError(t, err)

	rootCmd, _ := newRootCmd(t)
	rootCmd.SetArgs([]string{"inspect-token", "--token", token, "--secret", strings.Repeat("x", 32)})

	assert.Error(t, rootCmd.Execute())
}

func TestInspectTokenCmd_NoConfiguration(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	rootCmd, _ := newRootCmd(t)
	rootCmd.SetArgs([]string{"inspect-token", "--token", "abc"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no configuration file")
}
