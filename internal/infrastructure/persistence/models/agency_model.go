package models

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/agencies"
	"gorm.io/datatypes"
)

// AgencyModel is the GORM database model for partner agencies
type AgencyModel struct {
	ID                string  `gorm:"primaryKey;type:varchar(36)"`
	Name              string  `gorm:"not null;type:varchar(150)"`
	Slug              string  `gorm:"not null;uniqueIndex;type:varchar(150)"`
	Email             string  `gorm:"not null;type:varchar(255)"`
	Phone             string  `gorm:"type:varchar(32)"`
	Country           string  `gorm:"index;type:varchar(2)"`
	CommissionPercent float64 `gorm:"not null"`
	Status            string  `gorm:"not null;index;type:varchar(20)"`
	ServiceModuleIDs  datatypes.JSONSlice[string]
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (AgencyModel) TableName() string {
	return "agencies"
}

// ToDomain converts GORM model to domain entity
func (m *AgencyModel) ToDomain() *agencies.Agency {
	return &agencies.Agency{
		ID:                m.ID,
		Name:              m.Name,
		Slug:              m.Slug,
		Email:             m.Email,
		Phone:             m.Phone,
		Country:           m.Country,
		CommissionPercent: m.CommissionPercent,
		Status:            m.Status,
		ServiceModuleIDs:  []string(m.ServiceModuleIDs),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AgencyModel) FromDomain(a *agencies.Agency) {
	m.ID = a.ID
	m.Name = a.Name
	m.Slug = a.Slug
	m.Email = a.Email
	m.Phone = a.Phone
	m.Country = a.Country
	m.CommissionPercent = a.CommissionPercent
	m.Status = a.Status
	m.ServiceModuleIDs = datatypes.NewJSONSlice(a.ServiceModuleIDs)
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}
