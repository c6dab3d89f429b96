package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-item-api/config"
	"go-item-api/internal/api/handlers"
	"go-item-api/internal/api/middleware"
	"go-item-api/internal/api/routes"
	"go-item-api/internal/services"
	"go-item-api/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	jwtSecret   = "test-secret-key"
	jwtDuration = 15 * time.Minute
	testEmail   = "user@example.com"
)

// --- Helper Functions for Setup ---

func setupBasicRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	itemHandler := handlers.NewItemHandler(services.NewItemService(validation.New()), zap.NewNop())
	routes.RegisterItemRoutes(router.Group("/"), itemHandler)
	return router
}

// setupSecureRouter mounts the secure item routes behind the real bearer-token middleware.
// Tokens minted by the returned issuer are accepted.
func setupSecureRouter(t *testing.T) (*gin.Engine, *services.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	verifier, err := services.NewGoogleVerifier(config.AuthConfig{})
	require.NoError(t, err)
	tokens := services.NewTokenIssuer(jwtSecret, jwtDuration)
	authService := services.NewAuthService(verifier, tokens, zap.NewNop())

	itemHandler := handlers.NewItemHandler(services.NewItemService(validation.New()), zap.NewNop())
	secureHandler := handlers.NewSecureItemHandler(itemHandler, zap.NewNop())

	router := gin.New()
	routes.RegisterSecureItemRoutes(router.Group("/"), secureHandler, middleware.JWTAuthMiddleware(authService, zap.NewNop()))
	return router, tokens
}

func generateTestToken(t *testing.T, tokens *services.TokenIssuer) string {
	t.Helper()
	token, err := tokens.CreateAccessToken(testEmail)
	require.NoError(t, err)
	return token
}

func performRequest(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var authHeader string
	if token != "" {
		authHeader = "Bearer " + token
	}
	return performRequestWithAuthHeader(router, method, path, body, authHeader)
}

func performRequestWithAuthHeader(router http.Handler, method, path, body, authHeader string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performFormRequest(router http.Handler, path, form string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeValidation(t *testing.T, w *httptest.ResponseRecorder) handlers.ValidationErrorResponse {
	t.Helper()
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	var resp handlers.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Validation failed", resp.Error)
	require.NotEmpty(t, resp.Details)
	return resp
}

func hasDetail(resp handlers.ValidationErrorResponse, location, field, constraint string) bool {
	for _, d := range resp.Details {
		if d.Location == location && d.Field == field && d.Constraint == constraint {
			return true
		}
	}
	return false
}
