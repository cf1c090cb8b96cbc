package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lemonbridge/pkg/auth"
)

func TestTokenServiceRoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := auth.NewTokenService("test-signing-key-with-enough-bytes")
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Generate(auth.Claims{
		Subject:   userID.String(),
		Email:     "user@example.com",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	claims, err := svc.Parse(token)
	require.NoError(t, err)

	parsed, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestTokenServiceParse(t *testing.T) {
	t.Parallel()

	svc, err := auth.NewTokenService("test-signing-key-with-enough-bytes")
	require.NoError(t, err)

	t.Run("rejects malformed token", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Parse("not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("rejects tampered signature", func(t *testing.T) {
		t.Parallel()
		token, err := svc.Generate(auth.Claims{Subject: uuid.NewString()})
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		tampered := parts[0] + "." + parts[1] + ".AAAA"

		_, err = svc.Parse(tampered)
		assert.ErrorIs(t, err, auth.ErrInvalidSignature)
	})

	t.Run("rejects token signed with different key", func(t *testing.T) {
		t.Parallel()
		other, err := auth.NewTokenService("another-signing-key-entirely!!!!")
		require.NoError(t, err)

		token, err := other.Generate(auth.Claims{Subject: uuid.NewString()})
		require.NoError(t, err)

		_, err = svc.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidSignature)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		t.Parallel()
		token, err := svc.Generate(auth.Claims{
			Subject:   uuid.NewString(),
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		})
		require.NoError(t, err)

		_, err = svc.Parse(token)
		assert.ErrorIs(t, err, auth.ErrExpiredToken)
	})

	t.Run("non-uuid subject", func(t *testing.T) {
		t.Parallel()
		token, err := svc.Generate(auth.Claims{Subject: "admin"})
		require.NoError(t, err)

		claims, err := svc.Parse(token)
		require.NoError(t, err)

		_, err = claims.UserID()
		assert.ErrorIs(t, err, auth.ErrInvalidClaims)
	})
}

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	_, err := auth.NewTokenService("")
	assert.ErrorIs(t, err, auth.ErrMissingSigningKey)
}
