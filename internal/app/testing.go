//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/agencies"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/billing"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/catalog"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/wallets"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/auth"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/cache"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/connector"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestCurrency is the currency of test modules, wallets and invoices
const TestCurrency = "AED"

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	Auth         users.AuthService
	Users        users.UserService
	Modules      services.ServiceModuleService
	Applications services.ServiceApplicationService
	Quotes       services.ServiceQuoteService
	Agencies     agencies.AgencyService
	Invoices     billing.InvoiceService
	Wallets      wallets.WalletService
	Blog         content.BlogService
	Pages        content.PageService
	Menus        content.MenuService
	Ads          content.AdService
	Seo          content.SeoService
	Airports     catalog.AirportService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices wires every service against an in-memory database, an
// in-process cache and a temporary document directory
func SetupTestServices(t *testing.T) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t)
	memCache := cache.NewMemoryCache(256, time.Minute)

	documentConnector, err := connector.NewLocalDocumentConnector(t.TempDir(), log)
	require.NoError(t, err)

	tokens, err := auth.NewJWTTokenManager(&config.AuthSettings{
		JWTSecret: "integration-secret-0123456789abcdef",
		Issuer:    "travel-marketplace-test",
		TokenTTL:  time.Hour,
	})
	require.NoError(t, err)

	ts := &TestServices{DBContext: dbContext}

	ts.Auth, err = NewAuthService(dbContext.Users, auth.NewBcryptHasher(bcrypt.MinCost), tokens, log)
	require.NoError(t, err)
	ts.Users, err = NewUserService(dbContext.Users, log)
	require.NoError(t, err)
	ts.Modules, err = NewServiceModuleService(dbContext.Modules, log)
	require.NoError(t, err)
	ts.Agencies, err = NewAgencyService(dbContext.Agencies, log)
	require.NoError(t, err)
	ts.Wallets, err = NewWalletService(dbContext.Wallets, dbContext.Transactor, TestCurrency, log)
	require.NoError(t, err)
	ts.Invoices, err = NewInvoiceService(dbContext.Invoices, dbContext.Payments, ts.Wallets, dbContext.Transactor, &config.BillingSettings{
		Currency:     TestCurrency,
		TaxPercent:   5,
		NumberPrefix: "INV",
		DueDays:      14,
	}, log)
	require.NoError(t, err)
	ts.Applications, err = NewServiceApplicationService(dbContext.Applications, dbContext.Modules, dbContext.Agencies, ts.Wallets, documentConnector, dbContext.Transactor, 1<<20, log)
	require.NoError(t, err)
	ts.Quotes, err = NewServiceQuoteService(dbContext.Quotes, dbContext.Applications, dbContext.Modules, dbContext.Agencies, ts.Invoices, dbContext.Transactor, log)
	require.NoError(t, err)
	ts.Blog, err = NewBlogService(dbContext.Posts, log)
	require.NoError(t, err)
	ts.Pages, err = NewPageService(dbContext.Pages, log)
	require.NoError(t, err)
	ts.Menus, err = NewMenuService(dbContext.Menus, log)
	require.NoError(t, err)
	ts.Ads, err = NewAdService(dbContext.Ads, memCache, time.Minute, log)
	require.NoError(t, err)
	ts.Seo, err = NewSeoService(dbContext.Seo, memCache, time.Minute, log)
	require.NoError(t, err)
	ts.Airports, err = NewAirportService(dbContext.Airports, memCache, time.Minute, log)
	require.NoError(t, err)

	return ts
}

// RegisterTestUser registers a customer and returns it with its principal
func (ts *TestServices) RegisterTestUser(t *testing.T, email string) (*users.User, *users.Principal) {
	t.Helper()

	user, err := ts.Auth.Register(context.Background(), "Test User", email, "password123", "+971500000000")
	require.NoError(t, err)
	return user, &users.Principal{UserID: user.ID, Role: user.Role}
}

// CreateTestAgencyPrincipal onboards an active agency and returns an agency principal for it
func (ts *TestServices) CreateTestAgencyPrincipal(t *testing.T, slug string) (*agencies.Agency, *users.Principal) {
	t.Helper()

	agency, err := ts.Agencies.Create(context.Background(), persistence.CreateTestAgency(t, slug))
	require.NoError(t, err)

	account, err := ts.Auth.CreateAccount(context.Background(), "Agent "+slug, slug+"@agents.example", "password123", users.RoleAgency, &agency.ID)
	require.NoError(t, err)
	return agency, &users.Principal{UserID: account.ID, Role: users.RoleAgency, AgencyID: agency.ID}
}

// CreateTestModule stores an active tourist visa module priced in TestCurrency
func (ts *TestServices) CreateTestModule(t *testing.T, slug string) *services.ServiceModule {
	t.Helper()

	module, err := ts.Modules.Create(context.Background(), persistence.CreateTestModule(t, slug))
	require.NoError(t, err)
	return module
}

// AdminPrincipal returns a principal with admin rights
func AdminPrincipal() *users.Principal {
	return &users.Principal{UserID: "00000000-0000-4000-8000-000000000001", Role: users.RoleAdmin}
}
