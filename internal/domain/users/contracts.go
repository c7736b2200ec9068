package users

import (
	"context"
	"time"
)

// AuthService registers accounts and exchanges credentials for bearer tokens.
type AuthService interface {
	// Register creates a customer account.
	Register(ctx context.Context, name, email, password, phone string) (*User, error)

	// Login verifies the credentials and returns a signed token with its expiry.
	Login(ctx context.Context, email, password string) (string, time.Time, *User, error)

	// CreateAccount creates an account with an explicit role (admin tooling, agency onboarding).
	CreateAccount(ctx context.Context, name, email, password, role string, agencyID *string) (*User, error)
}

// UserService exposes read access to accounts.
type UserService interface {
	GetByID(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context, query *UserQuery) ([]*User, error)
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	UpdateByID(ctx context.Context, user *User) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenManager issues and verifies bearer tokens.
type TokenManager interface {
	Issue(user *User) (string, time.Time, error)
	Parse(token string) (*Principal, error)
}
