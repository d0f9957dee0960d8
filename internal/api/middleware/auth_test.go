package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/founder-scout/internal/logger"
)

func newTestKey(t *testing.T) (*rsa.PrivateKey, string) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.RegisteredClaims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticator_Authenticate(t *testing.T) {
	key, publicPEM := newTestKey(t)
	a := newAuthenticator(AuthConfig{JWTPublicKey: publicPEM, APIKeys: []string{"", "k-123"}})
	now := time.Now()

	valid := signToken(t, jwt.SigningMethodRS256, key, jwt.RegisteredClaims{
		Subject:   "partner@example.com",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	expired := signToken(t, jwt.SigningMethodRS256, key, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	})
	notYet := signToken(t, jwt.SigningMethodRS256, key, jwt.RegisteredClaims{
		NotBefore: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	hmac := signToken(t, jwt.SigningMethodHS256, []byte("secret"), jwt.RegisteredClaims{})

	tests := []struct {
		name     string
		header   string
		wantType string
		wantErr  string
	}{
		{"valid jwt", "Bearer " + valid, AuthTypeJWT, ""},
		{"lowercase scheme", "bearer " + valid, AuthTypeJWT, ""},
		{"expired jwt", "Bearer " + expired, "", "failed to parse token"},
		{"jwt not yet valid", "Bearer " + notYet, "", "failed to parse token"},
		{"wrong signing method", "Bearer " + hmac, "", "unexpected signing method"},
		{"valid api key", "ApiKey k-123", AuthTypeAPIKey, ""},
		{"invalid api key", "ApiKey nope", "", "invalid API key"},
		{"empty key never matches", "ApiKey ", "", "invalid Authorization header format"},
		{"missing header", "", "", "missing Authorization header"},
		{"no credentials", "Bearer", "", "invalid Authorization header format"},
		{"unknown scheme", "Basic dXNlcg==", "", "unsupported authorization type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := a.Authenticate(tt.header)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, result.AuthType)
		})
	}
}

func TestAuthenticator_Subject(t *testing.T) {
	key, publicPEM := newTestKey(t)
	a := newAuthenticator(AuthConfig{JWTPublicKey: publicPEM})

	token := signToken(t, jwt.SigningMethodRS256, key, jwt.RegisteredClaims{Subject: "partner@example.com"})
	result, err := a.Authenticate("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "partner@example.com", result.AuthSubject)
}

func TestAuthenticator_Unconfigured(t *testing.T) {
	a := newAuthenticator(AuthConfig{})

	_, err := a.Authenticate("Bearer x.y.z")
	assert.EqualError(t, err, "JWT public key not configured")

	_, err = a.Authenticate("ApiKey anything")
	assert.EqualError(t, err, "no API keys configured")
}

func TestAuth_Middleware(t *testing.T) {
	_ = logger.Initialize(logger.Config{Debug: true})
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/write", Auth(AuthConfig{APIKeys: []string{"k-123"}}), func(c *gin.Context) {
		assert.Equal(t, AuthTypeAPIKey, c.GetString(string(AUTH_TYPE_KEY)))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/write", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Details string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unauthorized", body.Error.Code)
	assert.Equal(t, "missing Authorization header", body.Error.Details)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/write", nil)
	req.Header.Set("Authorization", "ApiKey k-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRecovery(t *testing.T) {
	_ = logger.Initialize(logger.Config{Debug: true})
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"code":"internal_error","message":"Internal server error"}}`, w.Body.String())
}
