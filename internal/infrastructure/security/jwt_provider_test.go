//go:build unit
// +build unit

package security

import (
	"testing"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestProvider(t *testing.T, now time.Time) *JWTProvider {
	t.Helper()

	p, err := NewJWTProvider(&config.JWTSettings{
		Secret:     testSecret,
		Expiration: time.Hour,
		Issuer:     "usuarios-service",
	})
	require.NoError(t, err)
	p.now = func() time.Time { return now }
	return p
}

func testUser() *users.User {
	return &users.User{
		ID:        5,
		FirstName: "Maria",
		LastName:  "Lopez",
		Email:     "maria@restaurant.com",
		Role:      &users.Role{ID: 2, Name: users.RoleOwner},
	}
}

func TestJWTProvider_GenerateAndParse(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	p := newTestProvider(t, now)

	token, expiresAt, err := p.Generate(testUser())
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := p.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "maria@restaurant.com", claims.Subject)
	assert.Equal(t, int64(5), claims.UserID)
	assert.Equal(t, users.RoleOwner, claims.Role)
	assert.Equal(t, "Maria", claims.FirstName)
	assert.Equal(t, "Lopez", claims.LastName)
	assert.True(t, claims.IssuedAt.Equal(now))
	assert.True(t, claims.ExpiresAt.Equal(expiresAt))
}

func TestJWTProvider_ParseRejects(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	p := newTestProvider(t, now)

	valid, _, err := p.Generate(testUser())
	require.NoError(t, err)

	expired, _, err := newTestProvider(t, now.Add(-2*time.Hour)).Generate(testUser())
	require.NoError(t, err)

	otherSecret, err := NewJWTProvider(&config.JWTSettings{
		Secret:     "ffffffffffffffffffffffffffffffff",
		Expiration: time.Hour,
		Issuer:     "usuarios-service",
	})
	require.NoError(t, err)
	otherSecret.now = p.now
	forged, _, err := otherSecret.Generate(testUser())
	require.NoError(t, err)

	otherIssuer, err := NewJWTProvider(&config.JWTSettings{
		Secret:     testSecret,
		Expiration: time.Hour,
		Issuer:     "someone-else",
	})
	require.NoError(t, err)
	otherIssuer.now = p.now
	wrongIssuer, _, err := otherIssuer.Generate(testUser())
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "maria@restaurant.com",
		Issuer:    "usuarios-service",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", forged},
		{"wrong issuer", wrongIssuer},
		{"unexpected algorithm", hs512},
		{"malformed", "not.a.jwt"},
		{"empty", ""},
		{"tampered", valid + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := p.Parse(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTProvider_GenerateRequiresSubject(t *testing.T) {
	p := newTestProvider(t, time.Now())

	_, _, err := p.Generate(&users.User{ID: 1})
	assert.Error(t, err)
}

func TestNewJWTProvider_ShortSecret(t *testing.T) {
	_, err := NewJWTProvider(&config.JWTSettings{Secret: "short", Expiration: time.Hour})
	assert.Error(t, err)
}
