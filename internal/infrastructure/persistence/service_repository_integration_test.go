//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/agencies"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceModuleRepository_JSONColumns(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	module := CreateTestModule(t, services.TouristVisaSlug)
	require.NoError(t, tc.Modules.Create(ctx, module))

	fetched, err := tc.Modules.GetBySlug(ctx, services.TouristVisaSlug)
	require.NoError(t, err)
	assert.Equal(t, module.FormFields, fetched.FormFields)
	assert.Equal(t, module.Pricing, fetched.Pricing)
	assert.Equal(t, int64(32250), fetched.Pricing.Total())

	dup := CreateTestModule(t, services.TouristVisaSlug)
	assert.ErrorIs(t, tc.Modules.Create(ctx, dup), apperr.ErrConflict)
}

func TestServiceModuleRepository_ListFilters(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	visa := CreateTestModule(t, "tourist-visa")
	visa.SortOrder = 2
	hidden := CreateTestModule(t, "work-visa")
	hidden.IsActive = false
	translation := CreateTestModule(t, "legal-translation")
	translation.Category = services.CategoryTranslation
	translation.SortOrder = 1
	for _, m := range []*services.ServiceModule{visa, hidden, translation} {
		require.NoError(t, tc.Modules.Create(ctx, m))
	}

	query := services.NewModuleQuery()
	query.ActiveOnly = true
	active, err := tc.Modules.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "legal-translation", active[0].Slug)

	query = services.NewModuleQuery()
	query.Category = services.CategoryVisa
	visas, err := tc.Modules.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, visas, 2)

	query = services.NewModuleQuery()
	query.Name = "%"
	wildcard, err := tc.Modules.List(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, wildcard)

	query.Name = "tourist"
	named, err := tc.Modules.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, named, 3)

	require.NoError(t, tc.Modules.DeleteByID(ctx, hidden.ID))
	_, err = tc.Modules.GetByID(ctx, hidden.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, tc.Modules.DeleteByID(ctx, hidden.ID), apperr.ErrNotFound)
}

func TestServiceApplicationRepository_RoundTrip(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	module := CreateTestModule(t, services.TouristVisaSlug)
	require.NoError(t, tc.Modules.Create(ctx, module))

	userID := uuid.NewString()
	app := CreateTestApplication(t, userID, module)
	require.NoError(t, tc.Applications.Create(ctx, app))

	app.Documents = append(app.Documents, services.Document{
		ID:          uuid.NewString(),
		Name:        "passport.pdf",
		ContentType: "application/pdf",
		Size:        2048,
		StorageKey:  "applications/" + app.ID + "/passport.pdf",
		UploadedAt:  time.Now().UTC(),
	})
	require.NoError(t, app.TransitionTo(services.StatusUnderReview, time.Now().UTC()))
	require.NoError(t, tc.Applications.UpdateByID(ctx, app))

	fetched, err := tc.Applications.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, services.StatusUnderReview, fetched.Status)
	assert.Equal(t, "N1234567", fetched.FormData["passport_number"])
	require.Len(t, fetched.Documents, 1)
	assert.Equal(t, "passport.pdf", fetched.Documents[0].Name)

	query := services.NewApplicationQuery()
	query.UserID = userID
	query.Status = services.StatusUnderReview
	list, err := tc.Applications.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	query.Status = services.StatusPending
	list, err = tc.Applications.List(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestServiceQuoteRepository_CountPending(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	appID := uuid.NewString()
	agencyA, agencyB := uuid.NewString(), uuid.NewString()
	newQuote := func(agencyID string) *services.ServiceQuote {
		return &services.ServiceQuote{
			ID:                   uuid.NewString(),
			ServiceApplicationID: appID,
			AgencyID:             agencyID,
			Price:                25000,
			Currency:             "AED",
			ProcessingDays:       3,
			Status:               services.QuotePending,
			CreatedAt:            time.Now().UTC(),
		}
	}

	q1, q2 := newQuote(agencyA), newQuote(agencyB)
	require.NoError(t, tc.Quotes.Create(ctx, q1))
	require.NoError(t, tc.Quotes.Create(ctx, q2))

	count, err := tc.Quotes.CountPending(ctx, appID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	assert.ErrorIs(t, tc.Quotes.Create(ctx, newQuote(agencyA)), apperr.ErrConflict,
		"one pending quote per agency and application")

	count, err = tc.Quotes.CountPending(ctx, appID, agencyA)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, q1.Resolve(services.QuoteRejected, time.Now().UTC()))
	require.NoError(t, tc.Quotes.UpdateByID(ctx, q1))

	count, err = tc.Quotes.CountPending(ctx, appID, agencyA)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, tc.Quotes.Create(ctx, newQuote(agencyA)), "a resolved quote frees the slot")

	quotes, err := tc.Quotes.ListByApplication(ctx, appID)
	require.NoError(t, err)
	assert.Len(t, quotes, 3)
}

func TestAgencyRepository_CRUD(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	agency := CreateTestAgency(t, "gulf-partners")
	agency.ServiceModuleIDs = []string{uuid.NewString()}
	require.NoError(t, tc.Agencies.Create(ctx, agency))

	fetched, err := tc.Agencies.GetByID(ctx, agency.ID)
	require.NoError(t, err)
	assert.Equal(t, agency.ServiceModuleIDs, fetched.ServiceModuleIDs)

	fetched.Status = agencies.StatusSuspended
	require.NoError(t, tc.Agencies.UpdateByID(ctx, fetched))

	list, err := tc.Agencies.List(ctx, agencies.NewAgencyQuery())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsActive())

	require.NoError(t, tc.Agencies.DeleteByID(ctx, agency.ID))
	_, err = tc.Agencies.GetByID(ctx, agency.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestServiceRepositories_GetByIDForUpdate(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()
	transactor := NewGormTransactor(tc.DB)

	module := CreateTestModule(t, services.TouristVisaSlug)
	require.NoError(t, tc.Modules.Create(ctx, module))
	app := CreateTestApplication(t, uuid.NewString(), module)
	require.NoError(t, tc.Applications.Create(ctx, app))
	quote := &services.ServiceQuote{
		ID:                   uuid.NewString(),
		ServiceApplicationID: app.ID,
		AgencyID:             uuid.NewString(),
		Price:                25000,
		Currency:             "AED",
		ProcessingDays:       3,
		Status:               services.QuotePending,
		CreatedAt:            time.Now().UTC(),
	}
	require.NoError(t, tc.Quotes.Create(ctx, quote))

	err := transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		lockedApp, err := tc.Applications.GetByIDForUpdate(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, app.ID, lockedApp.ID)

		lockedQuote, err := tc.Quotes.GetByIDForUpdate(ctx, quote.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(25000), lockedQuote.Price)

		_, err = tc.Quotes.GetByIDForUpdate(ctx, uuid.NewString())
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		_, err = tc.Applications.GetByIDForUpdate(ctx, uuid.NewString())
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		return nil
	})
	require.NoError(t, err)
}
