package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSigningKey = []byte("test-signing-key-1234567890123456")

func authRouter(signingKey []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", JWTAuth(signingKey), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
		})
	})
	return r
}

func doAuthRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	cfg := JWTConfig{
		SigningKey: testSigningKey,
		Issuer:     "heatwatch",
		ExpiresIn:  time.Hour,
	}

	token, expiresAt, err := GenerateToken(cfg, "op-1", "alice", []string{"operator"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	w := doAuthRequest(authRouter(testSigningKey), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"op-1"`)
}

func TestJWTAuth_RejectsMissingAndMalformedHeaders(t *testing.T) {
	r := authRouter(testSigningKey)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"bare token", "just-a-token"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doAuthRequest(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestJWTAuth_RejectsExpiredToken(t *testing.T) {
	cfg := JWTConfig{
		SigningKey: testSigningKey,
		Issuer:     "heatwatch",
		ExpiresIn:  -time.Minute,
	}
	token, _, err := GenerateToken(cfg, "op-1", "alice", nil)
	require.NoError(t, err)

	w := doAuthRequest(authRouter(testSigningKey), "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token expired")
}

func TestJWTAuth_RejectsWrongKey(t *testing.T) {
	cfg := JWTConfig{
		SigningKey: []byte("another-key-9876543210987654321098"),
		Issuer:     "heatwatch",
		ExpiresIn:  time.Hour,
	}
	token, _, err := GenerateToken(cfg, "op-1", "alice", nil)
	require.NoError(t, err)

	w := doAuthRequest(authRouter(testSigningKey), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_RejectsNoneSigningMethod(t *testing.T) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{
		UserID: "op-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "heatwatch",
			Subject:   "op-1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	w := doAuthRequest(authRouter(testSigningKey), "Bearer "+tokenString)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
