package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func signTestToken(t *testing.T, role string, isSuperAdmin bool) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":        "11111111-2222-3333-4444-555555555555",
		"email":          "admin@savour.test",
		"role":           role,
		"is_super_admin": isSuperAdmin,
		"exp":            time.Now().Add(time.Hour).Unix(),
		"iat":            time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	authed := router.Group("", AuthMiddleware(), AdminMiddleware())
	authed.GET("/whoami", func(c *gin.Context) {
		id, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "role": GetRole(c)})
	})
	super := authed.Group("", SuperAdminMiddleware())
	super.GET("/restricted", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := newAuthTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := newAuthTestRouter()

	for _, header := range []string{"Token abc", "Bearer", "abc"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := newAuthTestRouter()

	// Signed with a different secret
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "x",
		"role":    models.RoleSuperAdmin,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := newAuthTestRouter()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "x",
		"role":    models.RoleSuperAdmin,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := newAuthTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, models.RoleAdmin, false))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "11111111-2222-3333-4444-555555555555")
	assert.Contains(t, w.Body.String(), models.RoleAdmin)
}

func TestAdminMiddleware_RejectsUnknownRole(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := newAuthTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "employee", false))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSuperAdminMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := newAuthTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/restricted", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, models.RoleAdmin, false))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/restricted", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, models.RoleSuperAdmin, true))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_NoSecretConfigured(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	router := newAuthTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
