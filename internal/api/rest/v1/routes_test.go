//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/catalog"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter() (*gin.Engine, *MockTokenManager, *Services) {
	tokens := new(MockTokenManager)
	tokens.On("Parse", "user-token").Return(&users.Principal{UserID: testUserID, Role: users.RoleUser}, nil)
	tokens.On("Parse", "admin-token").Return(&users.Principal{UserID: testUserID, Role: users.RoleAdmin}, nil)
	tokens.On("Parse", mock.Anything).Return(nil, errors.New("invalid token"))

	modules := new(MockServiceModuleService)
	modules.On("List", mock.Anything, mock.Anything).Return([]*services.ServiceModule{}, nil)

	airports := new(MockAirportService)
	airports.On("Search", mock.Anything, mock.Anything).Return([]*catalog.Airport{}, nil)

	userService := new(MockUserService)
	userService.On("List", mock.Anything, mock.Anything).Return([]*users.User{}, nil)

	svc := &Services{
		Auth:         new(MockAuthService),
		Users:        userService,
		Modules:      modules,
		Applications: new(MockServiceApplicationService),
		Quotes:       new(MockServiceQuoteService),
		Agencies:     new(MockAgencyService),
		Invoices:     new(MockInvoiceService),
		Wallets:      new(MockWalletService),
		Blog:         new(MockBlogService),
		Pages:        new(MockPageService),
		Menus:        new(MockMenuService),
		Ads:          new(MockAdService),
		Seo:          new(MockSeoService),
		Airports:     airports,
	}

	r := gin.New()
	SetupRoutes(r, svc, RouterOptions{Tokens: tokens, DefaultTaxPercent: 5})
	return r, tokens, svc
}

func serve(r *gin.Engine, method, url, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestSetupRoutes_PublicRoutes verifies that the public catalogue answers without a token
func TestSetupRoutes_PublicRoutes(t *testing.T) {
	r, _, _ := newTestRouter()

	tests := []struct {
		method string
		url    string
	}{
		{"GET", "/healthz"},
		{"GET", "/api/services"},
		{"GET", "/api/airports?q=dx"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			w := serve(r, tt.method, tt.url, "")
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

// TestSetupRoutes_ProtectedRoutes verifies that every authenticated route is registered and guarded
func TestSetupRoutes_ProtectedRoutes(t *testing.T) {
	r, _, _ := newTestRouter()

	tests := []struct {
		method string
		url    string
	}{
		{"GET", "/api/auth/me"},
		{"POST", "/api/services/tourist-visa/applications"},
		{"GET", "/api/applications"},
		{"POST", "/api/applications/abc/cancel"},
		{"POST", "/api/applications/abc/documents"},
		{"GET", "/api/tourist-visa-applications"},
		{"POST", "/api/applications/abc/quotes"},
		{"POST", "/api/quotes/abc/accept"},
		{"GET", "/api/invoices"},
		{"POST", "/api/invoices/abc/pay-wallet"},
		{"GET", "/api/wallet"},
		{"GET", "/api/wallet/transactions"},
		{"GET", "/api/admin/users"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			w := serve(r, tt.method, tt.url, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			w = serve(r, tt.method, tt.url, "forged")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

// TestSetupRoutes_AdminRoutes verifies that admin routes reject regular accounts
func TestSetupRoutes_AdminRoutes(t *testing.T) {
	r, _, _ := newTestRouter()

	tests := []struct {
		method string
		url    string
	}{
		{"GET", "/api/admin/users"},
		{"POST", "/api/admin/services"},
		{"PATCH", "/api/admin/applications/abc/status"},
		{"POST", "/api/admin/applications/abc/assign"},
		{"POST", "/api/admin/agencies"},
		{"POST", "/api/admin/agencies/abc/suspend"},
		{"POST", "/api/admin/invoices"},
		{"POST", "/api/admin/payments/abc/refund"},
		{"POST", "/api/admin/wallets/top-up"},
		{"POST", "/api/admin/blog-posts"},
		{"GET", "/api/admin/ads"},
		{"PUT", "/api/admin/seo"},
		{"POST", "/api/admin/airports/import"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			w := serve(r, tt.method, tt.url, "user-token")
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestSetupRoutes_AdminAccess(t *testing.T) {
	r, _, _ := newTestRouter()

	w := serve(r, "GET", "/api/admin/users", "admin-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRoutes_MetricsOnlyWhenConfigured(t *testing.T) {
	r, _, _ := newTestRouter()

	w := serve(r, "GET", "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
