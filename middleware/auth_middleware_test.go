package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubboard/backend/models"
	"github.com/clubboard/backend/utils"
)

func newProtectedRouter(roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString("userID"),
			"role":   c.GetString("role"),
		})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter()

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing token")

	// Wrong scheme counts as missing too.
	w = doRequest(r, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter()

	w := doRequest(r, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestRequireAuthWrongSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "other-secret")
	token, err := utils.GenerateToken("user-1", "", string(models.RoleStudent), time.Hour)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter()
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateToken("user-1", "", string(models.RoleStudent), -time.Second)
	require.NoError(t, err)

	r := newProtectedRouter()
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRoleMismatch(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateToken("user-1", "", string(models.RoleStudent), time.Hour)
	require.NoError(t, err)

	r := newProtectedRouter(models.RoleAdmin)
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateToken("user-42", "", string(models.RoleStudent), time.Hour)
	require.NoError(t, err)

	r := newProtectedRouter(models.RoleStudent)
	w := doRequest(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
	assert.Contains(t, w.Body.String(), string(models.RoleStudent))
}
