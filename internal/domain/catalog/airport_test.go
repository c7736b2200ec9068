//go:build unit
// +build unit

package catalog

import (
	"testing"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAirport_Validate(t *testing.T) {
	airport := &Airport{
		ID:        uuid.NewString(),
		IATA:      "DXB",
		ICAO:      "OMDB",
		Name:      "Dubai International",
		City:      "Dubai",
		Country:   "United Arab Emirates",
		Latitude:  25.2528,
		Longitude: 55.3644,
	}
	assert.NoError(t, airport.Validate())
	assert.Equal(t, "Dubai (DXB) - Dubai International", airport.Label())

	airport.IATA = "dxb"
	assert.ErrorIs(t, airport.Validate(), apperr.ErrValidation)

	airport.IATA = "DXB"
	airport.Latitude = 91
	assert.ErrorIs(t, airport.Validate(), apperr.ErrValidation)
}

func TestAirportSearch_Normalize(t *testing.T) {
	search := &AirportSearch{Query: "  dub "}
	search.Normalize()
	assert.Equal(t, "dub", search.Query)
	assert.Equal(t, DefaultSearchLimit, search.Limit)
	assert.NoError(t, search.Validate())

	search.Limit = 51
	assert.ErrorIs(t, search.Validate(), apperr.ErrValidation)
}
