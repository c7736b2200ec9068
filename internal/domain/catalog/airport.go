package catalog

import (
	"strings"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"
)

// Search limits
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

// Airport entity
type Airport struct {
	ID        string  `validate:"required,uuid4"`
	IATA      string  `validate:"required,iata"`
	ICAO      string  `validate:"omitempty,len=4,alphanum,uppercase"`
	Name      string  `validate:"required,max=200"`
	City      string  `validate:"required,max=120"`
	Country   string  `validate:"required,max=120"`
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate for validating Airport struct
func (a *Airport) Validate() error {
	return validators.Struct(a)
}

// Label renders the airport as shown in search suggestions, e.g. "Dubai (DXB) - Dubai International".
func (a *Airport) Label() string {
	return a.City + " (" + a.IATA + ") - " + a.Name
}

// AirportSearch is a typeahead lookup on IATA prefix, city or name.
type AirportSearch struct {
	Query string `validate:"max=100"`
	Limit int    `validate:"min=0,max=50"`
}

// Normalize trims the query and applies the default limit.
func (s *AirportSearch) Normalize() {
	s.Query = strings.TrimSpace(s.Query)
	if s.Limit == 0 {
		s.Limit = DefaultSearchLimit
	}
}

// Validate for validating AirportSearch struct
func (s *AirportSearch) Validate() error {
	return validators.Struct(s)
}
