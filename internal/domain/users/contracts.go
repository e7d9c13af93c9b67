package users

import (
	"context"
	"time"
)

// TokenTypeBearer is the token type announced in every login session.
const TokenTypeBearer = "Bearer"

// Session is the result of a successful login.
type Session struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
	UserID    int64
	Email     string
	Role      string
}

// Claims are the values carried by an access token.
type Claims struct {
	Subject   string
	UserID    int64
	Role      string
	FirstName string
	LastName  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// UserService defines the user registration and lookup use cases.
type UserService interface {
	// CreateOwner registers a restaurant owner. Owners must be of legal age.
	// It returns the stored user and any validation, conflict or storage error.
	CreateOwner(ctx context.Context, user *User) (*User, error)

	// CreateEmployee registers an employee bound to a restaurant.
	CreateEmployee(ctx context.Context, user *User) (*User, error)

	// CreateClient registers a client through the public signup.
	CreateClient(ctx context.Context, user *User) (*User, error)

	// GetUserByID retrieves a user by its ID without the password hash.
	// It returns ErrUserNotFound when no such user exists.
	GetUserByID(ctx context.Context, userID int64) (*User, error)
}

// AuthService defines the login and token verification use cases.
type AuthService interface {
	// Authenticate checks the credentials and issues an access token.
	// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*Session, error)

	// ValidateToken parses an access token and resolves the user it was issued to.
	ValidateToken(ctx context.Context, token string) (*User, error)
}

// UserRepository defines the interface for User-related persistence operations
type UserRepository interface {
	Save(ctx context.Context, user *User) (*User, error)
	FindByID(ctx context.Context, userID int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByIdentityDocument(ctx context.Context, document string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByIdentityDocument(ctx context.Context, document string) (bool, error)
}

// RoleRepository defines the interface for Role-related persistence operations
type RoleRepository interface {
	FindByID(ctx context.Context, roleID int64) (*Role, error)
	FindByName(ctx context.Context, name string) (*Role, error)
	List(ctx context.Context) ([]*Role, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Matches(raw, hash string) bool
}

// TokenProvider issues and verifies access tokens.
type TokenProvider interface {
	// Generate issues a token for the user and returns it with its expiry.
	Generate(user *User) (string, time.Time, error)

	// Parse verifies a token and returns its claims.
	Parse(token string) (*Claims, error)
}

// UserCache is a read-through cache of users keyed by ID.
// A miss is reported as (nil, false, nil).
type UserCache interface {
	Get(ctx context.Context, userID int64) (*User, bool, error)
	Set(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID int64) error
}
