//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthService(t *testing.T) (users.AuthService, *MockUserRepository, *MockPasswordHasher, *MockTokenProvider) {
	t.Helper()

	userRepo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokens := new(MockTokenProvider)

	svc, err := NewAuthService(userRepo, hasher, tokens, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return svc, userRepo, hasher, tokens
}

func TestAuthService_Authenticate(t *testing.T) {
	stored := &users.User{
		ID:       7,
		Email:    "owner@restaurant.com",
		Password: "$2a$10$hash",
		Role:     &users.Role{ID: 2, Name: users.RoleOwner},
	}
	expiresAt := time.Date(2025, time.June, 16, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setup     func(userRepo *MockUserRepository, hasher *MockPasswordHasher, tokens *MockTokenProvider)
		wantErr   error
		wantToken string
	}{
		{
			name: "valid credentials",
			setup: func(userRepo *MockUserRepository, hasher *MockPasswordHasher, tokens *MockTokenProvider) {
				userRepo.On("FindByEmail", mock.Anything, stored.Email).Return(stored, nil)
				hasher.On("Matches", "secret123", stored.Password).Return(true)
				tokens.On("Generate", stored).Return("jwt-token", expiresAt, nil)
			},
			wantToken: "jwt-token",
		},
		{
			name: "unknown email",
			setup: func(userRepo *MockUserRepository, hasher *MockPasswordHasher, tokens *MockTokenProvider) {
				userRepo.On("FindByEmail", mock.Anything, stored.Email).Return(nil, users.ErrUserNotFound)
			},
			wantErr: users.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(userRepo *MockUserRepository, hasher *MockPasswordHasher, tokens *MockTokenProvider) {
				userRepo.On("FindByEmail", mock.Anything, stored.Email).Return(stored, nil)
				hasher.On("Matches", "secret123", stored.Password).Return(false)
			},
			wantErr: users.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo, hasher, tokens := setupAuthService(t)
			tt.setup(userRepo, hasher, tokens)

			session, err := svc.Authenticate(context.Background(), stored.Email, "secret123")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "Invalid email or password", err.Error())
				assert.Nil(t, session)
				tokens.AssertNotCalled(t, "Generate", mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, session.Token)
			assert.Equal(t, "Bearer", session.TokenType)
			assert.Equal(t, int64(7), session.UserID)
			assert.Equal(t, stored.Email, session.Email)
			assert.Equal(t, users.RoleOwner, session.Role)
			assert.Equal(t, expiresAt, session.ExpiresAt)
		})
	}
}

func TestAuthService_Authenticate_RepositoryFailure(t *testing.T) {
	svc, userRepo, _, _ := setupAuthService(t)
	dbErr := errors.New("db down")
	userRepo.On("FindByEmail", mock.Anything, "a@b.co").Return(nil, dbErr)

	_, err := svc.Authenticate(context.Background(), "a@b.co", "x")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestAuthService_ValidateToken(t *testing.T) {
	stored := &users.User{ID: 3, Email: "client@mail.com", Password: "hash", Role: &users.Role{Name: users.RoleClient}}

	t.Run("valid token", func(t *testing.T) {
		svc, userRepo, _, tokens := setupAuthService(t)
		tokens.On("Parse", "good").Return(&users.Claims{Subject: stored.Email, UserID: 3}, nil)
		userRepo.On("FindByEmail", mock.Anything, stored.Email).Return(stored, nil)

		user, err := svc.ValidateToken(context.Background(), "good")

		require.NoError(t, err)
		assert.Equal(t, int64(3), user.ID)
		assert.Empty(t, user.Password)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, userRepo, _, tokens := setupAuthService(t)
		tokens.On("Parse", "bad").Return(nil, errors.New("signature is invalid"))

		_, err := svc.ValidateToken(context.Background(), "bad")

		assert.ErrorIs(t, err, users.ErrInvalidCredentials)
		userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		svc, userRepo, _, tokens := setupAuthService(t)
		tokens.On("Parse", "orphan").Return(&users.Claims{Subject: "gone@mail.com"}, nil)
		userRepo.On("FindByEmail", mock.Anything, "gone@mail.com").Return(nil, users.ErrUserNotFound)

		_, err := svc.ValidateToken(context.Background(), "orphan")

		assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	})
}
