package billing

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/lemonbridge/pkg/auth"
	"github.com/dmitrymomot/lemonbridge/pkg/billing"
)

// Service is the billing surface the HTTP handlers call.
// *billing.Service satisfies it.
type Service interface {
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	CreateCheckout(ctx context.Context, identity auth.Identity, variantID string) (string, error)
	PortalLink(ctx context.Context, identity auth.Identity) (string, error)
	Sync(ctx context.Context) (billing.SyncReport, error)
}

// RouterOptions configures the billing module router.
type RouterOptions struct {
	Service Service
	Tokens  *auth.TokenService
	Log     *slog.Logger
}

// Router mounts the billing routes. The webhook and manual sync endpoints
// are open; checkout and portal require a bearer token.
func Router(opts RouterOptions) chi.Router {
	if opts.Service == nil {
		panic("billing module: Service is required")
	}
	if opts.Tokens == nil {
		panic("billing module: TokenService is required")
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	h := &handlers{svc: opts.Service, log: log}

	r := chi.NewRouter()
	r.Post("/lemonsqueezy", h.webhook)
	r.Get("/manual-lemonsqueezy-synchronization", h.manualSync)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(opts.Tokens, writeAuthError))
		r.Post("/create-checkout-session", h.createCheckoutSession)
		r.Get("/create-portal-link", h.createPortalLink)
	})

	return r
}
