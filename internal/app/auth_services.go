package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/logger"
)

// authService implements the users.AuthService interface
type authService struct {
	userRepo users.UserRepository
	hasher   users.PasswordHasher
	tokens   users.TokenProvider
	logger   logger.Logger
}

// NewAuthService creates a new authService instance
func NewAuthService(
	userRepo users.UserRepository,
	hasher users.PasswordHasher,
	tokens users.TokenProvider,
	logger logger.Logger,
) (users.AuthService, error) {
	if userRepo == nil || hasher == nil || tokens == nil {
		return nil, fmt.Errorf("auth service requires a user repository, a password hasher and a token provider")
	}
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}, nil
}

// Authenticate checks the credentials and issues a bearer token.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*users.Session, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			s.logger.Debug("login rejected: unknown email")
			return nil, users.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to load user by email: %w", err)
	}

	if !s.hasher.Matches(password, user.Password) {
		s.logger.Debug(fmt.Sprintf("login rejected: wrong password for user %d", user.ID))
		return nil, users.NewInvalidCredentialsError()
	}

	token, expiresAt, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &users.Session{
		Token:     token,
		TokenType: users.TokenTypeBearer,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.RoleName(),
	}, nil
}

// ValidateToken verifies the token and resolves its subject.
func (s *authService) ValidateToken(ctx context.Context, token string) (*users.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		s.logger.Debug(fmt.Sprintf("token rejected: %v", err))
		return nil, users.NewInvalidCredentialsError()
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to load token subject: %w", err)
	}

	return user.WithoutPassword(), nil
}
