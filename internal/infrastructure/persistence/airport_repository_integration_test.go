//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/catalog"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAirport(iata, name, city string) *catalog.Airport {
	return &catalog.Airport{
		ID:      uuid.NewString(),
		IATA:    iata,
		Name:    name,
		City:    city,
		Country: "United Arab Emirates",
	}
}

func TestAirportRepository_UpsertAndSearch(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, tc.Airports.UpsertByIATA(ctx, []*catalog.Airport{
		testAirport("DXB", "Dubai International", "Dubai"),
		testAirport("DWC", "Al Maktoum International", "Dubai"),
		testAirport("AUH", "Zayed International", "Abu Dhabi"),
		testAirport("SHJ", "Sharjah International", "Sharjah"),
	}))

	results, err := tc.Airports.Search(ctx, "dxb", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "DXB", results[0].IATA)

	results, err = tc.Airports.Search(ctx, "dubai", 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = tc.Airports.Search(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "AUH", results[0].IATA)

	original, err := tc.Airports.GetByIATA(ctx, "DXB")
	require.NoError(t, err)

	renamed := testAirport("DXB", "Dubai International Airport", "Dubai")
	renamed.ICAO = "OMDB"
	require.NoError(t, tc.Airports.UpsertByIATA(ctx, []*catalog.Airport{renamed}))

	updated, err := tc.Airports.GetByIATA(ctx, "dxb")
	require.NoError(t, err)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, "Dubai International Airport", updated.Name)
	assert.Equal(t, "OMDB", updated.ICAO)

	_, err = tc.Airports.GetByIATA(ctx, "JFK")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAirportRepository_SearchTreatsWildcardsLiterally(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, tc.Airports.UpsertByIATA(ctx, []*catalog.Airport{
		testAirport("DXB", "Dubai International", "Dubai"),
		testAirport("AUH", "Zayed International", "Abu Dhabi"),
	}))

	for _, q := range []string{"%", "_", "D_B", `\`} {
		results, err := tc.Airports.Search(ctx, q, 10)
		require.NoError(t, err)
		assert.Empty(t, results, q)
	}

	results, err := tc.Airports.Search(ctx, "abu d", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "AUH", results[0].IATA)
}
