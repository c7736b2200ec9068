package models

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"gorm.io/datatypes"
)

// ServiceModuleModel is the GORM database model for service modules
type ServiceModuleModel struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	Slug        string `gorm:"not null;uniqueIndex;type:varchar(100)"`
	Name        string `gorm:"not null;type:varchar(150)"`
	Category    string `gorm:"not null;index;type:varchar(30)"`
	Description string `gorm:"type:text"`
	FormFields  datatypes.JSONSlice[services.FormField]
	Pricing     datatypes.JSONType[services.Pricing]
	IsActive    bool `gorm:"not null;index"`
	SortOrder   int  `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ServiceModuleModel) TableName() string {
	return "service_modules"
}

// ToDomain converts GORM model to domain entity
func (m *ServiceModuleModel) ToDomain() *services.ServiceModule {
	return &services.ServiceModule{
		ID:          m.ID,
		Slug:        m.Slug,
		Name:        m.Name,
		Category:    m.Category,
		Description: m.Description,
		FormFields:  []services.FormField(m.FormFields),
		Pricing:     m.Pricing.Data(),
		IsActive:    m.IsActive,
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ServiceModuleModel) FromDomain(s *services.ServiceModule) {
	m.ID = s.ID
	m.Slug = s.Slug
	m.Name = s.Name
	m.Category = s.Category
	m.Description = s.Description
	m.FormFields = datatypes.NewJSONSlice(s.FormFields)
	m.Pricing = datatypes.NewJSONType(s.Pricing)
	m.IsActive = s.IsActive
	m.SortOrder = s.SortOrder
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

// ServiceApplicationModel is the GORM database model for service applications
type ServiceApplicationModel struct {
	ID              string  `gorm:"primaryKey;type:varchar(36)"`
	ReferenceNo     string  `gorm:"not null;uniqueIndex;type:varchar(32)"`
	UserID          string  `gorm:"not null;index;type:varchar(36)"`
	ServiceModuleID string  `gorm:"not null;index;type:varchar(36)"`
	AgencyID        *string `gorm:"index;type:varchar(36)"`
	AcceptedQuoteID *string `gorm:"type:varchar(36)"`
	FormData        datatypes.JSONMap
	Status          string `gorm:"not null;index;type:varchar(20)"`
	Price           int64  `gorm:"not null"`
	Currency        string `gorm:"not null;type:varchar(3)"`
	AdminNotes      string `gorm:"type:text"`
	Documents       datatypes.JSONSlice[services.Document]
	SubmittedAt     time.Time `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (ServiceApplicationModel) TableName() string {
	return "service_applications"
}

// ToDomain converts GORM model to domain entity
func (m *ServiceApplicationModel) ToDomain() *services.ServiceApplication {
	return &services.ServiceApplication{
		ID:              m.ID,
		ReferenceNo:     m.ReferenceNo,
		UserID:          m.UserID,
		ServiceModuleID: m.ServiceModuleID,
		AgencyID:        m.AgencyID,
		AcceptedQuoteID: m.AcceptedQuoteID,
		FormData:        map[string]interface{}(m.FormData),
		Status:          m.Status,
		Price:           m.Price,
		Currency:        m.Currency,
		AdminNotes:      m.AdminNotes,
		Documents:       []services.Document(m.Documents),
		SubmittedAt:     m.SubmittedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ServiceApplicationModel) FromDomain(a *services.ServiceApplication) {
	m.ID = a.ID
	m.ReferenceNo = a.ReferenceNo
	m.UserID = a.UserID
	m.ServiceModuleID = a.ServiceModuleID
	m.AgencyID = a.AgencyID
	m.AcceptedQuoteID = a.AcceptedQuoteID
	m.FormData = datatypes.JSONMap(a.FormData)
	m.Status = a.Status
	m.Price = a.Price
	m.Currency = a.Currency
	m.AdminNotes = a.AdminNotes
	m.Documents = datatypes.NewJSONSlice(a.Documents)
	m.SubmittedAt = a.SubmittedAt
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}

// ServiceQuoteModel is the GORM database model for agency quotes
type ServiceQuoteModel struct {
	ID                   string     `gorm:"primaryKey;type:varchar(36)"`
	ServiceApplicationID string     `gorm:"not null;index;uniqueIndex:idx_quote_pending_agency,where:status = 'pending';type:varchar(36)"`
	AgencyID             string     `gorm:"not null;index;uniqueIndex:idx_quote_pending_agency,where:status = 'pending';type:varchar(36)"`
	Price                int64      `gorm:"not null"`
	Currency             string     `gorm:"not null;type:varchar(3)"`
	ProcessingDays       int        `gorm:"not null"`
	Notes                string     `gorm:"type:text"`
	Status               string     `gorm:"not null;index;type:varchar(20)"`
	ValidUntil           *time.Time `gorm:"index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the table name for GORM
func (ServiceQuoteModel) TableName() string {
	return "service_quotes"
}

// ToDomain converts GORM model to domain entity
func (m *ServiceQuoteModel) ToDomain() *services.ServiceQuote {
	return &services.ServiceQuote{
		ID:                   m.ID,
		ServiceApplicationID: m.ServiceApplicationID,
		AgencyID:             m.AgencyID,
		Price:                m.Price,
		Currency:             m.Currency,
		ProcessingDays:       m.ProcessingDays,
		Notes:                m.Notes,
		Status:               m.Status,
		ValidUntil:           m.ValidUntil,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ServiceQuoteModel) FromDomain(q *services.ServiceQuote) {
	m.ID = q.ID
	m.ServiceApplicationID = q.ServiceApplicationID
	m.AgencyID = q.AgencyID
	m.Price = q.Price
	m.Currency = q.Currency
	m.ProcessingDays = q.ProcessingDays
	m.Notes = q.Notes
	m.Status = q.Status
	m.ValidUntil = utcPtr(q.ValidUntil)
	m.CreatedAt = q.CreatedAt
	m.UpdatedAt = q.UpdatedAt
}
