//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/services"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/metrics"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testApplicationID = "0b6f1d0e-8a53-4a7e-9c55-2a2b6f1c1a01"
	testModuleID      = "3d8f9a71-2c4b-4e5f-8a9b-0c1d2e3f4a5b"
)

func testApplication() *services.ServiceApplication {
	now := time.Now().UTC()
	return &services.ServiceApplication{
		ID:              testApplicationID,
		ReferenceNo:     "APP-20261019-ABC123",
		UserID:          testUserID,
		ServiceModuleID: testModuleID,
		FormData:        map[string]interface{}{"full_name": "Amina Yusuf"},
		Status:          services.StatusPending,
		Price:           32250,
		Currency:        "AED",
		SubmittedAt:     now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestApplicationHandler_Submit_Success(t *testing.T) {
	mockApplicationService := new(MockServiceApplicationService)
	m := metrics.New()
	handler := NewApplicationHandler(mockApplicationService, new(MockServiceModuleService), m)

	mockApplicationService.
		On("Submit", mock.Anything, mock.AnythingOfType("*users.Principal"), "hajj-umrah", map[string]interface{}{"full_name": "Amina Yusuf"}).
		Return(testApplication(), nil)

	c, w := newTestContext("POST", "/api/services/hajj-umrah/applications", `{"form_data":{"full_name":"Amina Yusuf"}}`, "slug", "hajj-umrah")
	asUser(c)
	handler.Submit(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var body ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "APP-20261019-ABC123", body.ReferenceNo)
	assert.Equal(t, "AED 322.50", body.FormattedPrice)
	assert.Equal(t, "warning", body.StatusBadge)
	assert.NotNil(t, body.Documents)
	mockApplicationService.AssertExpectations(t)
}

func TestApplicationHandler_Submit_MissingFormData(t *testing.T) {
	mockApplicationService := new(MockServiceApplicationService)
	handler := NewApplicationHandler(mockApplicationService, new(MockServiceModuleService), nil)

	c, w := newTestContext("POST", "/api/services/hajj-umrah/applications", `{}`, "slug", "hajj-umrah")
	asUser(c)
	handler.Submit(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockApplicationService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplicationHandler_Submit_FormValidationErrors(t *testing.T) {
	mockApplicationService := new(MockServiceApplicationService)
	handler := NewApplicationHandler(mockApplicationService, new(MockServiceModuleService), nil)

	formErr := apperr.NewValidationError("passport_number", "required")
	mockApplicationService.
		On("Submit", mock.Anything, mock.Anything, services.TouristVisaSlug, mock.Anything).
		Return(nil, formErr)

	c, w := newTestContext("POST", "/api/tourist-visa-applications", `{"form_data":{"full_name":"Amina"}}`)
	asUser(c)
	handler.SubmitTouristVisa(c)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "required", body.Errors["passport_number"])
}

func TestApplicationHandler_List_UserCannotFilterByOtherUser(t *testing.T) {
	mockApplicationService := new(MockServiceApplicationService)
	handler := NewApplicationHandler(mockApplicationService, new(MockServiceModuleService), nil)

	mockApplicationService.
		On("List", mock.Anything, mock.Anything, mock.MatchedBy(func(q *services.ApplicationQuery) bool {
			return q.UserID == "" && q.Status == services.StatusPending
		})).
		Return([]*services.ServiceApplication{testApplication()}, nil)

	c, w := newTestContext("GET", "/api/applications?status=pending&user_id=8e2c5b9a-1111-4222-8333-944455556666", "")
	asUser(c)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockApplicationService.AssertExpectations(t)
}

func TestApplicationHandler_List_AdminFilters(t *testing.T) {
	mockApplicationService := new(MockServiceApplicationService)
	handler := NewApplicationHandler(mockApplicationService, new(MockServiceModuleService), nil)

	mockApplicationService.
		On("List", mock.Anything, mock.Anything, mock.MatchedBy(func(q *services.ApplicationQuery) bool {
			return q.UserID == testUserID && q.AgencyID == testAgencyID && q.SortBy == "price" && q.SortOrder == "desc"
		})).
		Return([]*services.ServiceApplication{}, nil)

	c, w := newTestContext("GET", "/api/applications?user_id="+testUserID+"&agency_id="+testAgencyID+"&sortBy=price&sortOrder=desc", "")
	asAdmin(c)
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestApplicationHandler_GetByID_Forbidden(t *testing.T) {
	mockApplicationService := new(MockServiceApplicationService)
	handler := NewApplicationHandler(mockApplicationService, new(MockServiceModuleService), nil)

	mockApplicationService.
		On("GetByID", mock.Anything, mock.Anything, testApplicationID).
		Return(nil, apperr.Forbiddenf("application %s is not visible", testApplicationID))

	c, w := newTestContext("GET", "/api/applications/"+testApplicationID, "", "id", testApplicationID)
	asUser(c)
	handler.GetByID(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestApplicationHandler_Cancel_Conflict(t *testing.T) {
	mockApplicationService := new(MockServiceApplicationService)
	handler := NewApplicationHandler(mockApplicationService, new(MockServiceModuleService), nil)

	mockApplicationService.
		On("Cancel", mock.Anything, mock.Anything, testApplicationID).
		Return(nil, apperr.Conflictf("application is approved"))

	c, w := newTestContext("POST", "/api/applications/"+testApplicationID+"/cancel", "", "id", testApplicationID)
	asUser(c)
	handler.Cancel(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApplicationHandler_UploadDocument_Success(t *testing.T) {
	mockApplicationService := new(MockServiceApplicationService)
	handler := NewApplicationHandler(mockApplicationService, new(MockServiceModuleService), nil)

	document := &services.Document{ID: "doc-1", Name: "passport.pdf", ContentType: "application/pdf", Size: 11}
	mockApplicationService.
		On("AttachDocument", mock.Anything, mock.Anything, testApplicationID, "passport.pdf", "application/pdf", int64(11), mock.Anything).
		Return(document, nil)

	body, contentType := testutil.CreateMultipartBody(t, []testutil.FormFile{
		{Field: "file", FileName: "passport.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.7 ok")},
	}, nil)
	c, w := newRawTestContext("POST", "/api/applications/"+testApplicationID+"/documents", body, contentType, "id", testApplicationID)
	asUser(c)
	handler.UploadDocument(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "doc-1")
	mockApplicationService.AssertExpectations(t)
}

func TestApplicationHandler_UploadDocument_MissingFile(t *testing.T) {
	handler := NewApplicationHandler(new(MockServiceApplicationService), new(MockServiceModuleService), nil)

	body, contentType := testutil.CreateEmptyMultipartBody(t)
	c, w := newRawTestContext("POST", "/api/applications/"+testApplicationID+"/documents", body, contentType, "id", testApplicationID)
	asUser(c)
	handler.UploadDocument(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplicationHandler_DownloadDocument_StreamsFile(t *testing.T) {
	mockApplicationService := new(MockServiceApplicationService)
	handler := NewApplicationHandler(mockApplicationService, new(MockServiceModuleService), nil)

	content := "%PDF-1.7 ok"
	document := &services.Document{ID: "doc-1", Name: "passport.pdf", ContentType: "application/pdf", Size: int64(len(content))}
	mockApplicationService.
		On("OpenDocument", mock.Anything, mock.Anything, testApplicationID, "doc-1").
		Return(document, io.NopCloser(strings.NewReader(content)), nil)

	r := gin.New()
	r.GET("/applications/:id/documents/:documentId", func(ctx *gin.Context) {
		asUser(ctx)
		handler.DownloadDocument(ctx)
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/applications/"+testApplicationID+"/documents/doc-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "passport.pdf")
}

func TestApplicationHandler_ListTouristVisa_PinsModule(t *testing.T) {
	mockApplicationService := new(MockServiceApplicationService)
	mockModuleService := new(MockServiceModuleService)
	handler := NewApplicationHandler(mockApplicationService, mockModuleService, nil)

	mockModuleService.
		On("GetBySlug", mock.Anything, services.TouristVisaSlug).
		Return(&services.ServiceModule{ID: testModuleID, Slug: services.TouristVisaSlug}, nil)
	mockApplicationService.
		On("List", mock.Anything, mock.Anything, mock.MatchedBy(func(q *services.ApplicationQuery) bool {
			return q.ServiceModuleID == testModuleID
		})).
		Return([]*services.ServiceApplication{testApplication()}, nil)

	c, w := newTestContext("GET", "/api/tourist-visa-applications", "")
	asUser(c)
	handler.ListTouristVisa(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockApplicationService.AssertExpectations(t)
}

func TestApplicationHandler_GetTouristVisa_OtherModuleIsNotFound(t *testing.T) {
	mockApplicationService := new(MockServiceApplicationService)
	mockModuleService := new(MockServiceModuleService)
	handler := NewApplicationHandler(mockApplicationService, mockModuleService, nil)

	mockModuleService.
		On("GetBySlug", mock.Anything, services.TouristVisaSlug).
		Return(&services.ServiceModule{ID: "99999999-2c4b-4e5f-8a9b-0c1d2e3f4a5b", Slug: services.TouristVisaSlug}, nil)
	mockApplicationService.
		On("GetByID", mock.Anything, mock.Anything, testApplicationID).
		Return(testApplication(), nil)

	c, w := newTestContext("GET", "/api/tourist-visa-applications/"+testApplicationID, "", "id", testApplicationID)
	asUser(c)
	handler.GetTouristVisa(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplicationHandler_UpdateStatus(t *testing.T) {
	mockApplicationService := new(MockServiceApplicationService)
	handler := NewApplicationHandler(mockApplicationService, new(MockServiceModuleService), nil)

	reviewed := testApplication()
	reviewed.Status = services.StatusUnderReview
	mockApplicationService.
		On("UpdateStatus", mock.Anything, testApplicationID, services.StatusUnderReview, "documents complete").
		Return(reviewed, nil)

	c, w := newTestContext("PATCH", "/api/admin/applications/"+testApplicationID+"/status", `{"status":"under_review","notes":"documents complete"}`, "id", testApplicationID)
	asAdmin(c)
	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"under_review"`)
}

func TestApplicationHandler_UpdateStatus_InvalidTransition(t *testing.T) {
	mockApplicationService := new(MockServiceApplicationService)
	handler := NewApplicationHandler(mockApplicationService, new(MockServiceModuleService), nil)

	mockApplicationService.
		On("UpdateStatus", mock.Anything, testApplicationID, services.StatusCompleted, "").
		Return(nil, apperr.Conflictf("cannot move from pending to completed"))

	c, w := newTestContext("PATCH", "/api/admin/applications/"+testApplicationID+"/status", `{"status":"completed"}`, "id", testApplicationID)
	asAdmin(c)
	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApplicationHandler_AssignAgency(t *testing.T) {
	mockApplicationService := new(MockServiceApplicationService)
	handler := NewApplicationHandler(mockApplicationService, new(MockServiceModuleService), nil)

	assigned := testApplication()
	agencyID := testAgencyID
	assigned.AgencyID = &agencyID
	mockApplicationService.
		On("AssignAgency", mock.Anything, testApplicationID, testAgencyID).
		Return(assigned, nil)

	c, w := newTestContext("POST", "/api/admin/applications/"+testApplicationID+"/assign", `{"agency_id":"`+testAgencyID+`"}`, "id", testApplicationID)
	asAdmin(c)
	handler.AssignAgency(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testAgencyID)
}
