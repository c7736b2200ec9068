//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/content"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testAdID = "3c2b1a09-8f7e-4d6c-9b5a-493827160514"

func testAd() *content.Ad {
	return &content.Ad{
		ID:          testAdID,
		Title:       "Summer in Dubai",
		Placement:   content.PlacementHomeTop,
		TargetURL:   "https://partner.example/summer",
		IsActive:    true,
		Impressions: 200,
		Clicks:      5,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestAdHandler_Fetch_PassesPlacementAndLimit(t *testing.T) {
	mockAdService := new(MockAdService)
	fixed := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	handler := &adHandler{adService: mockAdService, now: func() time.Time { return fixed }}

	mockAdService.On("Fetch", mock.Anything, content.PlacementHomeTop, fixed, 2).Return([]*content.Ad{testAd()}, nil)

	c, w := newTestContext("GET", "/api/ads/fetch?placement=home_top&limit=2", "")
	handler.Fetch(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ctr":2.5`)
	mockAdService.AssertExpectations(t)
}

func TestAdHandler_Fetch_UnknownPlacement(t *testing.T) {
	mockAdService := new(MockAdService)
	handler := NewAdHandler(mockAdService)

	mockAdService.On("Fetch", mock.Anything, "banner", mock.Anything, 0).Return(nil, apperr.NewValidationError("placement", "oneof"))

	c, w := newTestContext("GET", "/api/ads/fetch?placement=banner", "")
	handler.Fetch(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAdHandler_Click_Redirects(t *testing.T) {
	mockAdService := new(MockAdService)
	handler := NewAdHandler(mockAdService)

	mockAdService.On("Click", mock.Anything, testAdID).Return("https://partner.example/summer", nil)

	c, w := newTestContext("GET", "/api/ads/"+testAdID+"/click", "", "id", testAdID)
	handler.Click(c)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://partner.example/summer", w.Header().Get("Location"))
}

func TestAdHandler_List_Filters(t *testing.T) {
	mockAdService := new(MockAdService)
	handler := NewAdHandler(mockAdService)

	mockAdService.
		On("List", mock.Anything, mock.MatchedBy(func(q *content.AdQuery) bool {
			return q.Placement == content.PlacementSidebar && q.Active != nil && !*q.Active
		})).
		Return([]*content.Ad{}, nil)

	c, w := newTestContext("GET", "/api/admin/ads?placement=sidebar&active=false", "")
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	mockAdService.AssertExpectations(t)
}

func TestAdHandler_List_InvalidActiveFlag(t *testing.T) {
	handler := NewAdHandler(new(MockAdService))

	c, w := newTestContext("GET", "/api/admin/ads?active=maybe", "")
	handler.List(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"active"`)
}

func TestAdHandler_Create_DefaultsActive(t *testing.T) {
	mockAdService := new(MockAdService)
	handler := NewAdHandler(mockAdService)

	mockAdService.
		On("Create", mock.Anything, mock.MatchedBy(func(a *content.Ad) bool { return a.IsActive })).
		Return(testAd(), nil)

	c, w := newTestContext("POST", "/api/admin/ads", `{"title":"Summer in Dubai","placement":"home_top","target_url":"https://partner.example/summer"}`)
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockAdService.AssertExpectations(t)
}
