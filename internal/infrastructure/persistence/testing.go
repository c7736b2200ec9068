//go:build integration
// +build integration

package persistence

import (
	"testing"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/agencies"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/billing"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB *gorm.DB
	*Repositories
}

// SetupTestDB initializes an in-memory database with every repository wired
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	db := testutil.SetupTestDB(t)
	repos, err := NewRepositories(db, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return &TestContext{DB: db, Repositories: repos}
}

// CreateTestUser creates a customer account with default values
func CreateTestUser(t *testing.T) *users.User {
	t.Helper()

	id := uuid.NewString()
	return &users.User{
		ID:           id,
		Name:         "Test User",
		Email:        "user-" + id[:8] + "@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         users.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
}

// CreateTestModule creates a tourist visa module with a small form
func CreateTestModule(t *testing.T, slug string) *services.ServiceModule {
	t.Helper()

	return &services.ServiceModule{
		ID:       uuid.NewString(),
		Slug:     slug,
		Name:     "Tourist Visa",
		Category: services.CategoryVisa,
		FormFields: []services.FormField{
			{Name: "passport_number", Label: "Passport number", Type: services.FieldText, Required: true},
			{Name: "entry", Label: "Entry", Type: services.FieldSelect, Options: []string{"single", "multiple"}},
		},
		Pricing: services.Pricing{
			BasePrice:          30000,
			Currency:           "AED",
			TaxPercent:         5,
			PlatformFeePercent: 2.5,
			ProcessingDays:     5,
		},
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

// CreateTestApplication creates a pending application for module
func CreateTestApplication(t *testing.T, userID string, module *services.ServiceModule) *services.ServiceApplication {
	t.Helper()

	now := time.Now().UTC()
	return &services.ServiceApplication{
		ID:              uuid.NewString(),
		ReferenceNo:     services.NewReferenceNo(now),
		UserID:          userID,
		ServiceModuleID: module.ID,
		FormData:        map[string]interface{}{"passport_number": "N1234567", "entry": "single"},
		Status:          services.StatusPending,
		Price:           module.Pricing.Total(),
		Currency:        module.Pricing.Currency,
		SubmittedAt:     now,
		CreatedAt:       now,
	}
}

// CreateTestAgency creates an active agency
func CreateTestAgency(t *testing.T, slug string) *agencies.Agency {
	t.Helper()

	return &agencies.Agency{
		ID:                uuid.NewString(),
		Name:              "Agency " + slug,
		Slug:              slug,
		Email:             slug + "@agency.example",
		Country:           "AE",
		CommissionPercent: 10,
		Status:            agencies.StatusActive,
		CreatedAt:         time.Now().UTC(),
	}
}

// CreateTestInvoice creates an unpaid single line invoice
func CreateTestInvoice(t *testing.T, userID, number string, issue time.Time) *billing.Invoice {
	t.Helper()

	inv := &billing.Invoice{
		ID:         uuid.NewString(),
		Number:     number,
		UserID:     userID,
		Items:      []billing.InvoiceItem{{Description: "Visa processing", Quantity: 1, UnitPrice: 10000}},
		Currency:   "USD",
		TaxPercent: 5,
		Status:     billing.StatusUnpaid,
		IssueDate:  issue,
		DueDate:    issue.AddDate(0, 0, 14),
		Recurrence: billing.Recurrence{Frequency: billing.FrequencyNone},
		CreatedAt:  issue,
	}
	require.NoError(t, inv.Recalculate())
	return inv
}

// CreateTestAd creates an active ad for placement
func CreateTestAd(t *testing.T, placement string, priority int) *content.Ad {
	t.Helper()

	return &content.Ad{
		ID:        uuid.NewString(),
		Title:     "Ad",
		Placement: placement,
		TargetURL: "https://example.com/offer",
		IsActive:  true,
		Priority:  priority,
		CreatedAt: time.Now().UTC(),
	}
}
