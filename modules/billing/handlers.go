package billing

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/lemonbridge/pkg/auth"
	"github.com/dmitrymomot/lemonbridge/pkg/lemonsqueezy"
)

// maxWebhookBody caps webhook payload reads; vendor deliveries are a few KB.
const maxWebhookBody = 1 << 20

type handlers struct {
	svc Service
	log *slog.Logger
}

type messageResponse struct {
	Message string `json:"message"`
}

// webhook receives signed vendor deliveries. The signature is computed over
// the raw body, so it must be read before any decoding.
func (h *handlers) webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, errors.New("failed to read request body"))
		return
	}

	signature := r.Header.Get(lemonsqueezy.SignatureHeader)
	if err := h.svc.HandleWebhook(r.Context(), payload, signature); err != nil {
		h.log.ErrorContext(r.Context(), "webhook processing failed", slog.Any("error", err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}

type createCheckoutRequest struct {
	VariantID string `json:"variant_id"`
}

type createCheckoutResponse struct {
	URL string `json:"url"`
}

func (h *handlers) createCheckoutSession(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, auth.ErrMissingToken)
		return
	}

	var req createCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New("invalid request body"))
		return
	}
	if req.VariantID == "" {
		writeError(w, errors.New("variant_id is required"))
		return
	}

	url, err := h.svc.CreateCheckout(r.Context(), identity, req.VariantID)
	if err != nil {
		h.log.ErrorContext(r.Context(), "checkout creation failed",
			slog.String("user_id", identity.UserID.String()),
			slog.Any("error", err),
		)
		writeError(w, errors.New("failed to create checkout session"))
		return
	}

	writeJSON(w, http.StatusOK, createCheckoutResponse{URL: url})
}

type portalLinkResponse struct {
	CustomerPortalLink string `json:"customer_portal_link"`
}

func (h *handlers) createPortalLink(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, auth.ErrMissingToken)
		return
	}

	url, err := h.svc.PortalLink(r.Context(), identity)
	if err != nil {
		h.log.ErrorContext(r.Context(), "portal link lookup failed",
			slog.String("user_id", identity.UserID.String()),
			slog.Any("error", err),
		)
		writeError(w, errors.New("failed to get customer portal link"))
		return
	}

	writeJSON(w, http.StatusOK, portalLinkResponse{CustomerPortalLink: url})
}

func (h *handlers) manualSync(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Sync(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "manual sync failed", slog.Any("error", err))
		writeError(w, errors.New("synchronization failed"))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: report.Message()})
}
