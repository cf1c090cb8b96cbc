package auth

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

var identityContextKey = &contextKey{name: "auth_identity"}

// Identity is the resolved caller identity available to handlers.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// SetIdentity stores the caller identity in the context.
func SetIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// IdentityFromContext returns the caller identity set by the middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok
}
