//go:build unit
// +build unit

package v1

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"

	"github.com/gin-gonic/gin"
)

const (
	testUserID   = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	testAgencyID = "1f0e2d3c-4b5a-4697-8877-665544332211"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestContext builds a gin context for a JSON request. params are key/value pairs.
func newTestContext(method, target, body string, params ...string) (*gin.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return newRawTestContext(method, target, reader, "application/json", params...)
}

func newRawTestContext(method, target string, body io.Reader, contentType string, params ...string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	if body == nil {
		body = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	for i := 0; i+1 < len(params); i += 2 {
		c.Params = append(c.Params, gin.Param{Key: params[i], Value: params[i+1]})
	}
	return c, w
}

func asUser(c *gin.Context) *users.Principal {
	principal := &users.Principal{UserID: testUserID, Role: users.RoleUser}
	c.Set(principalKey, principal)
	return principal
}

func asAgency(c *gin.Context) *users.Principal {
	principal := &users.Principal{UserID: testUserID, Role: users.RoleAgency, AgencyID: testAgencyID}
	c.Set(principalKey, principal)
	return principal
}

func asAdmin(c *gin.Context) *users.Principal {
	principal := &users.Principal{UserID: testUserID, Role: users.RoleAdmin}
	c.Set(principalKey, principal)
	return principal
}
