package users

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// Roles
const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleAgency = "agency"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 8

// MaxPasswordBytes is the bcrypt input limit; it counts bytes, not characters.
const MaxPasswordBytes = 72

// User entity
type User struct {
	ID           string    `validate:"required,uuid4"`
	Name         string    `validate:"required,min=2,max=120"`
	Email        string    `validate:"required,email,max=255"`
	PasswordHash string    `validate:"required"`
	Role         string    `validate:"required,oneof=user admin agency"`
	AgencyID     *string   `validate:"omitempty,uuid4"`
	Phone        string    `validate:"omitempty,max=32"`
	CreatedAt    time.Time `validate:"required"`
	UpdatedAt    time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	if err := validators.Struct(u); err != nil {
		return err
	}
	if u.Role == RoleAgency && u.AgencyID == nil {
		return apperr.NewValidationError("AgencyID", "required_for_agency")
	}
	return nil
}

// Principal is the authenticated actor of a request.
type Principal struct {
	UserID   string
	Role     string
	AgencyID string
}

// IsAdmin reports whether the principal has platform staff rights.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// IsAgency reports whether the principal acts for a partner agency.
func (p *Principal) IsAgency() bool {
	return p != nil && p.Role == RoleAgency && p.AgencyID != ""
}

// UserQuery filters the user listing
type UserQuery struct {
	Role      string `validate:"omitempty,oneof=user admin agency"`
	Email     string `validate:"omitempty,max=255"`
	Limit     int    `validate:"omitempty,gt=0,max=200"`
	Offset    int    `validate:"omitempty,gte=0"`
	SortBy    string `validate:"omitempty,oneof=created_at name email"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewUserQuery creates a UserQuery with default paging
func NewUserQuery() *UserQuery {
	return &UserQuery{Limit: 50}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	return validators.Struct(q)
}
