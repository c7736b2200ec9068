package app

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/caching"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/catalog"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/validators"

	"github.com/google/uuid"
)

// airportCSVColumns is the column count of "iata,icao,name,city,country,lat,lon"
const airportCSVColumns = 7

// airportService implements the AirportService interface
type airportService struct {
	airportRepo catalog.AirportRepository
	cache       caching.Cache
	cacheTTL    time.Duration
	logger      logger.Logger
	now         func() time.Time
}

// NewAirportService creates a new airportService instance
func NewAirportService(airportRepo catalog.AirportRepository, cache caching.Cache, cacheTTL time.Duration, logger logger.Logger) (catalog.AirportService, error) {
	return &airportService{airportRepo: airportRepo, cache: cache, cacheTTL: cacheTTL, logger: logger, now: time.Now}, nil
}

func airportCacheKey(search *catalog.AirportSearch) string {
	return fmt.Sprintf("airports:search:%d:%s", search.Limit, strings.ToLower(search.Query))
}

// Search matches IATA prefix, city or name; results are cached per query and limit
func (s *airportService) Search(ctx context.Context, search *catalog.AirportSearch) ([]*catalog.Airport, error) {
	search.Normalize()
	if err := search.Validate(); err != nil {
		return nil, err
	}

	key := airportCacheKey(search)
	if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var airports []*catalog.Airport
		if err := json.Unmarshal(raw, &airports); err == nil {
			return airports, nil
		}
	}

	airports, err := s.airportRepo.Search(ctx, search.Query, search.Limit)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(airports); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
			s.logger.Warn("Airport cache write failed for ", key, ": ", err)
		}
	}
	return airports, nil
}

// GetByIATA returns one airport
func (s *airportService) GetByIATA(ctx context.Context, iata string) (*catalog.Airport, error) {
	iata = strings.ToUpper(strings.TrimSpace(iata))
	if err := validators.Var("IATA", iata, "required,iata"); err != nil {
		return nil, err
	}
	return s.airportRepo.GetByIATA(ctx, iata)
}

// Import reads CSV rows, skips a header row and invalid rows, and upserts the
// rest by IATA code. Cached searches age out with the cache TTL.
func (s *airportService) Import(ctx context.Context, r io.Reader) (*catalog.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	now := s.now().UTC()
	result := &catalog.ImportResult{}
	seen := make(map[string]int)
	var airports []*catalog.Airport

	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read airport csv line %d: %w", line, err)
		}
		if line == 1 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "iata") {
			continue
		}

		airport, err := parseAirportRecord(record, now)
		if err != nil {
			s.logger.Warn("Skipping airport csv line ", line, ": ", err)
			result.Skipped++
			continue
		}
		// a later row for the same code replaces the earlier one
		if i, dup := seen[airport.IATA]; dup {
			airports[i] = airport
			result.Skipped++
			continue
		}
		seen[airport.IATA] = len(airports)
		airports = append(airports, airport)
	}

	if len(airports) > 0 {
		if err := s.airportRepo.UpsertByIATA(ctx, airports); err != nil {
			return nil, err
		}
	}
	result.Imported = len(airports)

	s.logger.Info("Imported ", result.Imported, " airports, skipped ", result.Skipped)
	return result, nil
}

func parseAirportRecord(record []string, now time.Time) (*catalog.Airport, error) {
	if len(record) < airportCSVColumns {
		return nil, fmt.Errorf("expected %d columns, got %d", airportCSVColumns, len(record))
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	lat, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q", record[5])
	}
	lon, err := strconv.ParseFloat(record[6], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q", record[6])
	}

	airport := &catalog.Airport{
		ID:        uuid.NewString(),
		IATA:      strings.ToUpper(record[0]),
		ICAO:      strings.ToUpper(record[1]),
		Name:      record[2],
		City:      record[3],
		Country:   record[4],
		Latitude:  lat,
		Longitude: lon,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := airport.Validate(); err != nil {
		return nil, err
	}
	return airport, nil
}
