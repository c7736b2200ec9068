//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testServiceModuleID = "5b1f2d44-3c6e-4a8f-9d10-2e3f4a5b6c7d"

func testModule(active bool) *services.ServiceModule {
	return &services.ServiceModule{
		ID:       testServiceModuleID,
		Slug:     "tourist-visa",
		Name:     "Tourist Visa",
		Category: services.CategoryVisa,
		FormFields: []services.FormField{
			{Name: "passport_number", Label: "Passport number", Type: services.FieldText, Required: true},
		},
		Pricing: services.Pricing{
			BasePrice:  30000,
			Currency:   "AED",
			TaxPercent: 5,
		},
		IsActive:  active,
		CreatedAt: time.Now().UTC(),
	}
}

func TestModuleHandler_ListActive(t *testing.T) {
	mockModuleService := new(MockServiceModuleService)
	handler := NewModuleHandler(mockModuleService)

	mockModuleService.
		On("List", mock.Anything, mock.MatchedBy(func(q *services.ModuleQuery) bool {
			return q.ActiveOnly && q.Category == services.CategoryVisa
		})).
		Return([]*services.ServiceModule{testModule(true)}, nil)

	c, w := newTestContext("GET", "/api/services?category=visa", "")
	handler.ListActive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"tourist-visa"`)
	assert.Contains(t, w.Body.String(), `"total_price":31500`)
	mockModuleService.AssertExpectations(t)
}

func TestModuleHandler_List_IncludesInactive(t *testing.T) {
	mockModuleService := new(MockServiceModuleService)
	handler := NewModuleHandler(mockModuleService)

	mockModuleService.
		On("List", mock.Anything, mock.MatchedBy(func(q *services.ModuleQuery) bool {
			return !q.ActiveOnly && q.Limit == 10
		})).
		Return([]*services.ServiceModule{}, nil)

	c, w := newTestContext("GET", "/api/admin/services?limit=10", "")
	asAdmin(c)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	mockModuleService.AssertExpectations(t)
}

func TestModuleHandler_GetBySlug(t *testing.T) {
	tests := []struct {
		name     string
		module   *services.ServiceModule
		err      error
		wantCode int
	}{
		{"active", testModule(true), nil, http.StatusOK},
		{"inactive is hidden", testModule(false), nil, http.StatusNotFound},
		{"missing", nil, apperr.NotFoundf("service tourist-visa not found"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockModuleService := new(MockServiceModuleService)
			handler := NewModuleHandler(mockModuleService)

			if tt.module != nil {
				mockModuleService.On("GetBySlug", mock.Anything, "tourist-visa").Return(tt.module, nil)
			} else {
				mockModuleService.On("GetBySlug", mock.Anything, "tourist-visa").Return(nil, tt.err)
			}

			c, w := newTestContext("GET", "/api/services/tourist-visa", "", "slug", "tourist-visa")
			handler.GetBySlug(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestModuleHandler_Create_DefaultsToActive(t *testing.T) {
	mockModuleService := new(MockServiceModuleService)
	handler := NewModuleHandler(mockModuleService)

	mockModuleService.
		On("Create", mock.Anything, mock.MatchedBy(func(m *services.ServiceModule) bool {
			return m.ID == "" && m.IsActive && m.Pricing.BasePrice == 30000
		})).
		Return(testModule(true), nil)

	body := `{"name":"Tourist Visa","category":"visa","pricing":{"base_price":30000,"currency":"AED","tax_percent":5}}`
	c, w := newTestContext("POST", "/api/admin/services", body)
	asAdmin(c)
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockModuleService.AssertExpectations(t)
}

func TestModuleHandler_Create_InvalidCategory(t *testing.T) {
	mockModuleService := new(MockServiceModuleService)
	handler := NewModuleHandler(mockModuleService)

	body := `{"name":"Tourist Visa","category":"cruise","pricing":{"base_price":30000,"currency":"AED"}}`
	c, w := newTestContext("POST", "/api/admin/services", body)
	asAdmin(c)
	handler.Create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockModuleService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestModuleHandler_Update_UsesPathID(t *testing.T) {
	mockModuleService := new(MockServiceModuleService)
	handler := NewModuleHandler(mockModuleService)

	mockModuleService.
		On("Update", mock.Anything, mock.MatchedBy(func(m *services.ServiceModule) bool {
			return m.ID == testServiceModuleID && !m.IsActive
		})).
		Return(testModule(false), nil)

	body := `{"name":"Tourist Visa","category":"visa","is_active":false,"pricing":{"base_price":30000,"currency":"AED"}}`
	c, w := newTestContext("PUT", "/api/admin/services/"+testServiceModuleID, body, "id", testServiceModuleID)
	asAdmin(c)
	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_active":false`)
	mockModuleService.AssertExpectations(t)
}

func TestModuleHandler_DeleteByID(t *testing.T) {
	mockModuleService := new(MockServiceModuleService)
	handler := NewModuleHandler(mockModuleService)

	mockModuleService.On("DeleteByID", mock.Anything, testServiceModuleID).Return(nil)

	c, w := newTestContext("DELETE", "/api/admin/services/"+testServiceModuleID, "", "id", testServiceModuleID)
	asAdmin(c)
	handler.DeleteByID(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockModuleService.AssertExpectations(t)
}
