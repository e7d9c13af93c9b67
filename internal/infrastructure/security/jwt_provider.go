package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the JWT payload. The subject is the user's email.
type tokenClaims struct {
	UserID    int64  `json:"userId"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.RegisteredClaims
}

// JWTProvider issues and verifies HS256 signed access tokens
type JWTProvider struct {
	secret     []byte
	expiration time.Duration
	issuer     string
	now        func() time.Time
}

// NewJWTProvider creates a JWTProvider from validated settings
func NewJWTProvider(settings *config.JWTSettings) (*JWTProvider, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid JWT settings: %w", err)
	}
	return &JWTProvider{
		secret:     []byte(settings.Secret),
		expiration: settings.Expiration,
		issuer:     settings.Issuer,
		now:        time.Now,
	}, nil
}

// Generate issues a token for user and returns it with its expiry
func (p *JWTProvider) Generate(user *users.User) (string, time.Time, error) {
	if user == nil || user.Email == "" {
		return "", time.Time{}, fmt.Errorf("cannot issue a token without a subject")
	}

	issuedAt := p.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(p.expiration)

	claims := tokenClaims{
		UserID:    user.ID,
		Role:      user.RoleName(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Parse verifies signature, algorithm, expiry and issuer and returns the claims
func (p *JWTProvider) Parse(token string) (*users.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("invalid token: %w", errors.New("missing subject"))
	}

	result := &users.Claims{
		Subject:   claims.Subject,
		UserID:    claims.UserID,
		Role:      claims.Role,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}
