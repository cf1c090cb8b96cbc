package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lemonbridge/pkg/auth"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	svc, err := auth.NewTokenService("test-signing-key-with-enough-bytes")
	require.NoError(t, err)

	userID := uuid.New()
	validToken, err := svc.Generate(auth.Claims{Subject: userID.String(), Email: "user@example.com"})
	require.NoError(t, err)

	var gotIdentity auth.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.IdentityFromContext(r.Context())
		require.True(t, ok)
		gotIdentity = id
		w.WriteHeader(http.StatusOK)
	})

	handler := auth.Middleware(svc, nil)(next)

	t.Run("valid token resolves identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, gotIdentity.UserID)
		assert.Equal(t, "user@example.com", gotIdentity.Email)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("custom error renderer", func(t *testing.T) {
		rendered := false
		custom := auth.Middleware(svc, func(w http.ResponseWriter, r *http.Request, err error) {
			rendered = true
			w.WriteHeader(http.StatusBadRequest)
		})(next)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		custom.ServeHTTP(rec, req)

		assert.True(t, rendered)
	})
}
