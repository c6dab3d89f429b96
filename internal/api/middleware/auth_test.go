package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-item-api/config"
	"go-item-api/internal/api/middleware"
	"go-item-api/internal/models"
	"go-item-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(t *testing.T, tokens *services.TokenIssuer) services.AuthService {
	t.Helper()
	verifier, err := services.NewGoogleVerifier(config.AuthConfig{})
	require.NoError(t, err)
	return services.NewAuthService(verifier, tokens, zap.NewNop())
}

func TestJWTAuthMiddleware_PassesIdentityExplicitly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := services.NewTokenIssuer("test-secret-key", time.Minute)
	token, err := tokens.CreateAccessToken("user@example.com")
	require.NoError(t, err)

	var received models.CurrentUser
	router := gin.New()
	router.GET("/me",
		middleware.JWTAuthMiddleware(newAuthService(t, tokens), zap.NewNop()),
		middleware.WithCurrentUser(func(c *gin.Context, user models.CurrentUser) {
			received = user
			c.JSON(http.StatusOK, user)
		}))

	for _, scheme := range []string{"Bearer", "bearer"} {
		received = models.CurrentUser{}
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", scheme+" "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"email":"user@example.com"}`, w.Body.String())
		assert.Equal(t, "user@example.com", received.Email)
	}
}

func TestJWTAuthMiddleware_RejectedTokenSetsChallenge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := services.NewTokenIssuer("test-secret-key", time.Minute)

	called := false
	router := gin.New()
	router.GET("/me",
		middleware.JWTAuthMiddleware(newAuthService(t, tokens), zap.NewNop()),
		func(c *gin.Context) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
	assert.False(t, called)
}

func TestWithCurrentUser_WithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	called := false
	router := gin.New()
	router.GET("/me", middleware.WithCurrentUser(func(c *gin.Context, user models.CurrentUser) {
		called = true
	}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	assert.False(t, called)
}

func TestGetCurrentUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := middleware.GetCurrentUser(c)
	assert.Error(t, err)

	c.Set("currentUser", "not a user")
	_, err = middleware.GetCurrentUser(c)
	assert.Error(t, err)

	c.Set("currentUser", models.CurrentUser{Email: "user@example.com"})
	user, err := middleware.GetCurrentUser(c)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
}
