package models

import (
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/catalog"
)

// AirportModel is the GORM database model for airports
type AirportModel struct {
	ID        string  `gorm:"primaryKey;type:varchar(36)"`
	IATA      string  `gorm:"column:iata;not null;uniqueIndex;type:varchar(3)"`
	ICAO      string  `gorm:"column:icao;type:varchar(4)"`
	Name      string  `gorm:"not null;index;type:varchar(200)"`
	City      string  `gorm:"not null;index;type:varchar(120)"`
	Country   string  `gorm:"not null;type:varchar(120)"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (AirportModel) TableName() string {
	return "airports"
}

// ToDomain converts GORM model to domain entity
func (m *AirportModel) ToDomain() *catalog.Airport {
	return &catalog.Airport{
		ID:        m.ID,
		IATA:      m.IATA,
		ICAO:      m.ICAO,
		Name:      m.Name,
		City:      m.City,
		Country:   m.Country,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AirportModel) FromDomain(a *catalog.Airport) {
	m.ID = a.ID
	m.IATA = a.IATA
	m.ICAO = a.ICAO
	m.Name = a.Name
	m.City = a.City
	m.Country = a.Country
	m.Latitude = a.Latitude
	m.Longitude = a.Longitude
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}
