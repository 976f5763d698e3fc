package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agily-hq/agily/internal/config"
	"github.com/agily-hq/agily/pkg/types"
)

func initTestKey() {
	config.JwtSecret = "unit-test-secret"
	Init()
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(), func(c *gin.Context) {
		claims := c.MustGet("claims").(*types.Claims)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return r
}

func TestGenerateAndParseToken(t *testing.T) {
	initTestKey()

	token, err := GenerateToken(42, "alice", true, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsSuperuser)
}

func TestParseToken_WrongKey(t *testing.T) {
	initTestKey()
	token, err := GenerateToken(1, "alice", false, time.Hour)
	require.NoError(t, err)

	config.JwtSecret = "some-other-secret"
	Init()
	defer initTestKey()

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestJWTAuthMiddleware_BearerHeader(t *testing.T) {
	initTestKey()
	router := protectedRouter()

	token, err := GenerateToken(7, "bob", false, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestJWTAuthMiddleware_CookieFallback(t *testing.T) {
	initTestKey()
	router := protectedRouter()

	token, err := GenerateToken(9, "carol", false, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthMiddleware_MissingCredentials(t *testing.T) {
	initTestKey()
	router := protectedRouter()

	req := httptest.NewRequest("GET", "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	initTestKey()
	router := protectedRouter()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	initTestKey()
	router := protectedRouter()

	token, err := GenerateToken(5, "dave", false, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
