package models

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
)

// UserModel is the GORM database model for user accounts
type UserModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	Name         string    `gorm:"not null;type:varchar(120)"`
	Email        string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	PasswordHash string    `gorm:"not null;type:varchar(255)"`
	Role         string    `gorm:"not null;index;type:varchar(20)"`
	AgencyID     *string   `gorm:"index;type:varchar(36)"`
	Phone        string    `gorm:"type:varchar(32)"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		AgencyID:     m.AgencyID,
		Phone:        m.Phone,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Name = u.Name
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.AgencyID = u.AgencyID
	m.Phone = u.Phone
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}
