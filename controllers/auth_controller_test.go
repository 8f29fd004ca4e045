package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The validation layer rejects malformed input before any store access, so
// these paths are exercised without a database.

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/register", RegisterStudent())
	r.POST("/api/auth/login", LoginStudent())
	r.POST("/api/auth/reset-password", ResetStudentPassword())
	r.POST("/adm/signup", RegisterAdmin())
	r.POST("/adm/reset-password", ResetAdminPassword())
	return r
}

const validStudentBody = `{
	"firstName": "Asha",
	"lastName": "Verma",
	"email": "a@x.com",
	"course": "BCA",
	"year": "2",
	"rollNumber": "1234567890123",
	"gender": "female",
	"password": "Passw0rd!"
}`

func TestRegisterStudentValidation(t *testing.T) {
	r := newAuthRouter()

	cases := []struct {
		name string
		body string
		want string
	}{
		{
			"missing fields",
			`{"email": "a@x.com"}`,
			"",
		},
		{
			"bad email",
			strings.Replace(validStudentBody, "a@x.com", "not-an-email", 1),
			"invalid email",
		},
		{
			"short roll number",
			strings.Replace(validStudentBody, "1234567890123", "12345", 1),
			"roll number must be 13 digits",
		},
		{
			"roll number with letters",
			strings.Replace(validStudentBody, "1234567890123", "12345678901ab", 1),
			"roll number must be 13 digits",
		},
		{
			"btech without branch",
			strings.Replace(validStudentBody, "BCA", "B.Tech", 1),
			"branch is required",
		},
		{
			"weak password",
			strings.Replace(validStudentBody, "Passw0rd!", "password", 1),
			"password must",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(r, "/api/auth/register", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			if tc.want != "" {
				assert.Contains(t, w.Body.String(), tc.want)
			}
		})
	}
}

func TestLoginStudentRejectsMalformedBody(t *testing.T) {
	r := newAuthRouter()

	w := postJSON(r, "/api/auth/login", `{"email": "a@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/auth/login", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetPasswordValidation(t *testing.T) {
	r := newAuthRouter()

	for _, path := range []string{"/api/auth/reset-password", "/adm/reset-password"} {
		t.Run(path, func(t *testing.T) {
			w := postJSON(r, path, `{"email": "a@x.com"}`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "email and new password are required")

			w = postJSON(r, path, `{"newPassword": "Passw0rd!"}`)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			w = postJSON(r, path, `{"email": "a@x.com", "newPassword": "short"}`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "password must be at least 8 characters long")
		})
	}
}

func TestRegisterAdminValidation(t *testing.T) {
	r := newAuthRouter()

	adminBody := `{
		"firstName": "Ravi",
		"lastName": "Kumar",
		"email": "admin@x.com",
		"adminId": "ADB12345",
		"password": "Passw0rd!"
	}`

	cases := []struct {
		name string
		body string
		want string
	}{
		{"bad email", strings.Replace(adminBody, "admin@x.com", "nope", 1), "invalid email"},
		{"bad admin id", strings.Replace(adminBody, "ADB12345", "ADB123", 1), "admin ID must start with ADB"},
		{"bad admin id prefix", strings.Replace(adminBody, "ADB12345", "XYZ12345", 1), "admin ID must start with ADB"},
		{"weak password", strings.Replace(adminBody, "Passw0rd!", "weakpass", 1), "password must"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(r, "/adm/signup", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}
