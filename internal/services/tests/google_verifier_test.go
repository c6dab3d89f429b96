package services_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-item-api/config"
	"go-item-api/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testClientID = "client-123.apps.googleusercontent.com"
	testKeyID    = "test-key"
)

// newOIDCServer serves an OpenID discovery document and a JWKS holding key's public half.
func newOIDCServer(t *testing.T, key *rsa.PrivateKey) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"issuer":   srv.URL,
			"jwks_uri": srv.URL + "/certs",
		})
	})
	mux.HandleFunc("/certs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"keys": []map[string]string{{
				"kty": "RSA",
				"kid": testKeyID,
				"use": "sig",
				"alg": "RS256",
				"n":   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes()),
			}},
		})
	})
	return srv
}

func signIDToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKeyID
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func idTokenClaims(issuer, audience string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss":            issuer,
		"aud":            audience,
		"sub":            "1234567890",
		"email":          "user@example.com",
		"email_verified": true,
		"name":           "Test User",
		"iat":            now.Unix(),
		"exp":            now.Add(time.Hour).Unix(),
	}
}

func TestGoogleVerifier_Verify(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv := newOIDCServer(t, key)
	verifier, err := services.NewGoogleVerifier(config.AuthConfig{
		GoogleClientIDs: []string{testClientID},
		GoogleIssuer:    srv.URL,
		JWKSCacheTTL:    time.Minute,
	})
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("Valid token", func(t *testing.T) {
		identity, err := verifier.Verify(ctx, signIDToken(t, key, idTokenClaims(srv.URL, testClientID)))
		require.NoError(t, err)
		assert.Equal(t, "1234567890", identity.Subject)
		assert.Equal(t, "user@example.com", identity.Email)
		assert.True(t, identity.EmailVerified)
		assert.Equal(t, "Test User", identity.Name)
	})

	t.Run("Token without email still verifies", func(t *testing.T) {
		claims := idTokenClaims(srv.URL, testClientID)
		delete(claims, "email")
		delete(claims, "email_verified")

		identity, err := verifier.Verify(ctx, signIDToken(t, key, claims))
		require.NoError(t, err)
		assert.Empty(t, identity.Email)
		assert.False(t, identity.EmailVerified)
	})

	expired := idTokenClaims(srv.URL, testClientID)
	expired["iat"] = time.Now().Add(-2 * time.Hour).Unix()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	rejected := map[string]string{
		"Wrong audience": signIDToken(t, key, idTokenClaims(srv.URL, "someone-else")),
		"Wrong issuer":   signIDToken(t, key, idTokenClaims("https://evil.example.com", testClientID)),
		"Unknown key":    signIDToken(t, otherKey, idTokenClaims(srv.URL, testClientID)),
		"Expired":        signIDToken(t, key, expired),
		"Garbage":        "not-a-jwt",
	}
	for name, token := range rejected {
		t.Run(name, func(t *testing.T) {
			identity, err := verifier.Verify(ctx, token)
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, services.ErrInvalidGoogleToken)
		})
	}
}

func TestGoogleVerifier_DisabledWithoutClientIDs(t *testing.T) {
	verifier, err := services.NewGoogleVerifier(config.AuthConfig{GoogleIssuer: "https://accounts.google.com"})
	require.NoError(t, err)

	identity, err := verifier.Verify(context.Background(), "anything")
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, services.ErrGoogleAuthDisabled)
}
