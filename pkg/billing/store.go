package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store defines billing record persistence. Upserts must be atomic on the
// vendor id: concurrent writes for the same id must never produce duplicate
// rows, with the last write winning.
type Store interface {
	// GetCustomerByUserID returns ErrCustomerNotFound when no mapping exists.
	GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (Customer, error)
	CreateCustomer(ctx context.Context, customer Customer) error

	// GetSubscriptionByUserID returns the user's most recently updated
	// subscription or ErrSubscriptionNotFound.
	GetSubscriptionByUserID(ctx context.Context, userID uuid.UUID) (Subscription, error)
	// UpsertSubscription preserves an existing user attribution when the
	// incoming record carries none.
	UpsertSubscription(ctx context.Context, sub Subscription) error

	UpsertProduct(ctx context.Context, product Product) error
	UpsertVariant(ctx context.Context, variant Variant) error
}

// PortalLinkCache caches signed customer portal URLs per user. Get returns
// ErrCacheMiss when no fresh link is stored.
type PortalLinkCache interface {
	Get(ctx context.Context, userID uuid.UUID) (string, error)
	Set(ctx context.Context, userID uuid.UUID, url string, ttl time.Duration) error
}

// Event is a received webhook delivery kept for audit.
type Event struct {
	EventName  string
	UserID     string
	TestMode   bool
	ReceivedAt time.Time
	Payload    []byte
}

// EventArchive persists raw webhook deliveries. Archiving is best effort:
// failures are logged, never surfaced to the webhook sender.
type EventArchive interface {
	Archive(ctx context.Context, event Event) error
}
