package catalog

import (
	"context"
	"io"
)

// ImportResult summarises an airport import.
type ImportResult struct {
	Imported int
	Skipped  int
}

// AirportService serves the airport lookup and keeps the catalogue current.
type AirportService interface {
	Search(ctx context.Context, search *AirportSearch) ([]*Airport, error)
	GetByIATA(ctx context.Context, iata string) (*Airport, error)
	// Import upserts airports by IATA code from CSV rows "iata,icao,name,city,country,lat,lon".
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
}

// AirportRepository defines the interface for Airport-related operations
type AirportRepository interface {
	Search(ctx context.Context, query string, limit int) ([]*Airport, error)
	GetByIATA(ctx context.Context, iata string) (*Airport, error)
	UpsertByIATA(ctx context.Context, airports []*Airport) error
}
