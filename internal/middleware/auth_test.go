package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finwell/finance-service/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: subject})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAuthMiddlewarePutsSubjectInContext(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	var gotSubject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = r.Context().Value(UserIDKey).(string)
	})

	req := httptest.NewRequest(http.MethodGet, "/snapshot", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "secret", "7"))
	rec := httptest.NewRecorder()

	AuthMiddleware(cfg)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7", gotSubject)
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without a token")
	})

	req := httptest.NewRequest(http.MethodGet, "/snapshot", nil)
	rec := httptest.NewRecorder()

	AuthMiddleware(cfg)(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached with a forged token")
	})

	req := httptest.NewRequest(http.MethodGet, "/snapshot", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", "7"))
	rec := httptest.NewRecorder()

	AuthMiddleware(cfg)(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
