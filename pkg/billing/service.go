package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/lemonbridge/pkg/auth"
	"github.com/dmitrymomot/lemonbridge/pkg/lemonsqueezy"
)

// VendorClient is the subset of the LemonSqueezy API the service uses.
// *lemonsqueezy.Client satisfies it.
type VendorClient interface {
	CreateCustomer(ctx context.Context, name, email string) (lemonsqueezy.Customer, error)
	GetCustomer(ctx context.Context, id string) (lemonsqueezy.Customer, error)
	FindCustomerByEmail(ctx context.Context, email string) (lemonsqueezy.Customer, error)
	CreateCheckout(ctx context.Context, params lemonsqueezy.CheckoutParams) (lemonsqueezy.Checkout, error)
	ListSubscriptions(ctx context.Context, page int) ([]lemonsqueezy.Subscription, lemonsqueezy.Pagination, error)
	ListProducts(ctx context.Context, page int) ([]lemonsqueezy.Product, lemonsqueezy.Pagination, error)
	ListVariants(ctx context.Context, page int) ([]lemonsqueezy.Variant, lemonsqueezy.Pagination, error)
}

// Service bridges local billing records to the vendor API.
type Service struct {
	client        VendorClient
	store         Store
	signingSecret string

	cache     PortalLinkCache
	archive   EventArchive
	notifier  Notifier
	log       *slog.Logger
	portalTTL time.Duration
}

// ServiceOption configures optional Service collaborators.
type ServiceOption func(*Service)

// WithPortalLinkCache enables caching of signed customer portal URLs.
func WithPortalLinkCache(cache PortalLinkCache) ServiceOption {
	return func(s *Service) { s.cache = cache }
}

// WithPortalLinkTTL overrides how long cached portal links are served.
// Vendor portal URLs are signed for 24 hours; the TTL must stay well below
// that so a cached link is never expired when handed out.
func WithPortalLinkTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.portalTTL = ttl
		}
	}
}

// WithEventArchive enables best-effort archiving of raw webhook deliveries.
func WithEventArchive(archive EventArchive) ServiceOption {
	return func(s *Service) { s.archive = archive }
}

// WithNotifier enables customer notifications on payment failures and
// cancellations.
func WithNotifier(n Notifier) ServiceOption {
	return func(s *Service) { s.notifier = n }
}

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates the billing service. Panics if required dependencies are
// nil to fail fast during initialization.
func NewService(client VendorClient, store Store, signingSecret string, opts ...ServiceOption) *Service {
	if client == nil {
		panic("billing: VendorClient is required")
	}
	if store == nil {
		panic("billing: Store is required")
	}
	if signingSecret == "" {
		panic("billing: signing secret is required")
	}

	s := &Service{
		client:        client,
		store:         store,
		signingSecret: signingSecret,
		log:           slog.Default(),
		portalTTL:     time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleWebhook verifies the HMAC signature over the raw payload, archives
// the delivery, and upserts the subscription record the event carries.
// Unrecognized event names are ignored without error.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if err := lemonsqueezy.VerifySignature(s.signingSecret, payload, signature); err != nil {
		return err
	}

	event, err := lemonsqueezy.ParseWebhookEvent(payload)
	if err != nil {
		return err
	}

	if s.archive != nil {
		archiveErr := s.archive.Archive(ctx, Event{
			EventName:  event.EventName,
			UserID:     event.UserID,
			TestMode:   event.TestMode,
			ReceivedAt: time.Now().UTC(),
			Payload:    payload,
		})
		if archiveErr != nil {
			s.log.ErrorContext(ctx, "failed to archive webhook event",
				slog.String("event", event.EventName),
				slog.Any("error", archiveErr),
			)
		}
	}

	if !lemonsqueezy.IsSubscriptionEvent(event.EventName) {
		s.log.DebugContext(ctx, "ignoring webhook event", slog.String("event", event.EventName))
		return nil
	}

	var userID uuid.NullUUID
	if event.UserID != "" {
		if id, parseErr := uuid.Parse(event.UserID); parseErr == nil {
			userID = uuid.NullUUID{UUID: id, Valid: true}
		} else {
			s.log.WarnContext(ctx, "webhook custom user_id is not a valid uuid",
				slog.String("user_id", event.UserID),
			)
		}
	}

	sub := subscriptionFromVendor(event.Subscription, userID)
	if err := s.store.UpsertSubscription(ctx, sub); err != nil {
		return fmt.Errorf("upsert subscription %s: %w", sub.VendorID, err)
	}

	s.notify(ctx, event.EventName, sub)
	return nil
}

func (s *Service) notify(ctx context.Context, eventName string, sub Subscription) {
	if s.notifier == nil || sub.UserEmail == "" {
		return
	}

	var err error
	switch eventName {
	case lemonsqueezy.EventSubscriptionPaymentFailed:
		err = s.notifier.PaymentFailed(ctx, sub)
	case lemonsqueezy.EventSubscriptionCancelled:
		err = s.notifier.SubscriptionCancelled(ctx, sub)
	default:
		return
	}
	if err != nil {
		s.log.ErrorContext(ctx, "failed to send billing notification",
			slog.String("event", eventName),
			slog.String("subscription", sub.VendorID),
			slog.Any("error", err),
		)
	}
}

// CreateCheckout resolves (or lazily creates) the caller's vendor customer
// mapping and creates a hosted checkout session for the variant. Returns the
// checkout URL.
func (s *Service) CreateCheckout(ctx context.Context, identity auth.Identity, variantID string) (string, error) {
	if identity.UserID == uuid.Nil {
		return "", ErrMissingIdentity
	}

	if _, err := s.ensureCustomer(ctx, identity); err != nil {
		return "", err
	}

	checkout, err := s.client.CreateCheckout(ctx, lemonsqueezy.CheckoutParams{
		VariantID: variantID,
		UserID:    identity.UserID.String(),
		Email:     identity.Email,
	})
	if err != nil {
		return "", fmt.Errorf("create checkout: %w", err)
	}
	return checkout.URL, nil
}

// PortalLink returns a signed customer portal URL for the caller, serving a
// cached link when one is still fresh.
func (s *Service) PortalLink(ctx context.Context, identity auth.Identity) (string, error) {
	if identity.UserID == uuid.Nil {
		return "", ErrMissingIdentity
	}

	if s.cache != nil {
		if url, err := s.cache.Get(ctx, identity.UserID); err == nil && url != "" {
			return url, nil
		} else if err != nil && !errors.Is(err, ErrCacheMiss) {
			s.log.WarnContext(ctx, "portal link cache read failed", slog.Any("error", err))
		}
	}

	customer, err := s.ensureCustomer(ctx, identity)
	if err != nil {
		return "", err
	}

	vendorCustomer, err := s.client.GetCustomer(ctx, customer.VendorCustomerID)
	if err != nil {
		return "", fmt.Errorf("fetch vendor customer %s: %w", customer.VendorCustomerID, err)
	}
	url := vendorCustomer.URLs.CustomerPortal
	if url == "" {
		return "", ErrPortalLinkUnavailable
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, identity.UserID, url, s.portalTTL); err != nil {
			s.log.WarnContext(ctx, "portal link cache write failed", slog.Any("error", err))
		}
	}
	return url, nil
}

// ensureCustomer returns the caller's customer mapping, creating the vendor
// customer and the local record on first use.
func (s *Service) ensureCustomer(ctx context.Context, identity auth.Identity) (Customer, error) {
	customer, err := s.store.GetCustomerByUserID(ctx, identity.UserID)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, ErrCustomerNotFound) {
		return Customer{}, err
	}

	vendorCustomer, err := s.client.CreateCustomer(ctx, identity.Email, identity.Email)
	if err != nil {
		// The vendor rejects duplicate emails per store; fall back to lookup
		// so a half-completed first attempt can still be mapped.
		found, findErr := s.client.FindCustomerByEmail(ctx, identity.Email)
		if findErr != nil {
			return Customer{}, fmt.Errorf("create vendor customer: %w", err)
		}
		vendorCustomer = found
	}

	customer = Customer{
		UserID:           identity.UserID,
		Email:            identity.Email,
		VendorCustomerID: vendorCustomer.ID,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.store.CreateCustomer(ctx, customer); err != nil {
		return Customer{}, fmt.Errorf("save customer mapping: %w", err)
	}
	return customer, nil
}

// Subscription returns the caller's current subscription record.
func (s *Service) Subscription(ctx context.Context, identity auth.Identity) (Subscription, error) {
	if identity.UserID == uuid.Nil {
		return Subscription{}, ErrMissingIdentity
	}
	return s.store.GetSubscriptionByUserID(ctx, identity.UserID)
}
