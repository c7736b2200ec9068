package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/catalog"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const airportBatchSize = 500

type gormAirportRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAirportRepository creates a new GORM-based AirportRepository implementation
func NewGormAirportRepository(db *gorm.DB, logger logger.Logger) (catalog.AirportRepository, error) {
	return &gormAirportRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Search matches an IATA prefix, or a case-insensitive substring of city or name.
// Exact and prefix IATA hits rank first.
func (r *gormAirportRepository) Search(ctx context.Context, query string, limit int) ([]*catalog.Airport, error) {
	dbQuery := conn(ctx, r.db).Model(&models.AirportModel{})

	if query == "" {
		dbQuery = dbQuery.Order("city asc, iata asc")
	} else {
		code := strings.ToUpper(query)
		prefix := escapeLike(code) + "%"
		needle := "%" + escapeLike(strings.ToLower(query)) + "%"
		dbQuery = dbQuery.
			Where("iata LIKE ?"+likeEscape+" OR LOWER(city) LIKE ?"+likeEscape+" OR LOWER(name) LIKE ?"+likeEscape, prefix, needle, needle).
			Order(clause.OrderBy{Expression: clause.Expr{
				SQL:                "CASE WHEN iata = ? THEN 0 WHEN iata LIKE ?" + likeEscape + " THEN 1 ELSE 2 END, city asc, iata asc",
				Vars:               []interface{}{code, prefix},
				WithoutParentheses: true,
			}})
	}

	var modelList []*models.AirportModel
	if err := dbQuery.Limit(limit).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to search airports: %w", err)
	}

	domainList := make([]*catalog.Airport, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormAirportRepository) GetByIATA(ctx context.Context, iata string) (*catalog.Airport, error) {
	var model models.AirportModel
	if err := conn(ctx, r.db).Where("iata = ?", strings.ToUpper(iata)).First(&model).Error; err != nil {
		return nil, translate(err, "fetch", "airport", iata)
	}
	return model.ToDomain(), nil
}

// UpsertByIATA inserts new airports and refreshes existing ones, keeping their IDs
func (r *gormAirportRepository) UpsertByIATA(ctx context.Context, airports []*catalog.Airport) error {
	if len(airports) == 0 {
		return nil
	}

	modelList := make([]*models.AirportModel, 0, len(airports))
	for _, airport := range airports {
		if err := airport.Validate(); err != nil {
			return fmt.Errorf("validation error for %s: %w", airport.IATA, err)
		}
		model := &models.AirportModel{}
		model.FromDomain(airport)
		modelList = append(modelList, model)
	}

	err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "iata"}},
		DoUpdates: clause.AssignmentColumns([]string{"icao", "name", "city", "country", "latitude", "longitude", "updated_at"}),
	}).CreateInBatches(modelList, airportBatchSize).Error
	if err != nil {
		return fmt.Errorf("failed to upsert airports: %w", err)
	}

	r.logger.Info("Upserted ", len(airports), " airports")
	return nil
}
