package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"github.com/google/uuid"
)

// authService implements the AuthService interface
type authService struct {
	userRepo users.UserRepository
	hasher   users.PasswordHasher
	tokens   users.TokenManager
	logger   logger.Logger
	now      func() time.Time
}

// NewAuthService creates a new authService instance
func NewAuthService(userRepo users.UserRepository, hasher users.PasswordHasher, tokens users.TokenManager, logger logger.Logger) (users.AuthService, error) {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Register creates a customer account
func (s *authService) Register(ctx context.Context, name, email, password, phone string) (*users.User, error) {
	return s.create(ctx, name, email, password, phone, users.RoleUser, nil)
}

// CreateAccount creates an account with an explicit role
func (s *authService) CreateAccount(ctx context.Context, name, email, password, role string, agencyID *string) (*users.User, error) {
	return s.create(ctx, name, email, password, "", role, agencyID)
}

func (s *authService) create(ctx context.Context, name, email, password, phone, role string, agencyID *string) (*users.User, error) {
	if len(password) < users.MinPasswordLength {
		return nil, apperr.NewValidationError("Password", fmt.Sprintf("min=%d", users.MinPasswordLength))
	}
	if len(password) > users.MaxPasswordBytes {
		return nil, apperr.NewValidationError("Password", fmt.Sprintf("max_bytes=%d", users.MaxPasswordBytes))
	}
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, apperr.Conflictf("email %s is already registered", email)
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("%w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	user := &users.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		AgencyID:     agencyID,
		Phone:        phone,
		CreatedAt:    s.now().UTC(),
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Registered ", user.Role, " account ", user.ID)
	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and wrong
// password fail the same way.
func (s *authService) Login(ctx context.Context, email, password string) (string, time.Time, *users.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", time.Time{}, nil, fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthorized)
		}
		return "", time.Time{}, nil, fmt.Errorf("%w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Warn("Failed login for user ", user.ID)
		return "", time.Time{}, nil, err
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return "", time.Time{}, nil, fmt.Errorf("%w", err)
	}
	return token, expiresAt, user, nil
}

// userService implements the UserService interface
type userService struct {
	userRepo users.UserRepository
	logger   logger.Logger
}

// NewUserService creates a new userService instance
func NewUserService(userRepo users.UserRepository, logger logger.Logger) (users.UserService, error) {
	return &userService{userRepo: userRepo, logger: logger}, nil
}

// GetByID returns one account
func (s *userService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// List returns accounts matching query
func (s *userService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx, query)
}
