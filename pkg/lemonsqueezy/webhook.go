package lemonsqueezy

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

// SignatureHeader is the header carrying the webhook HMAC.
const SignatureHeader = "X-Signature"

// Webhook event names emitted by LemonSqueezy for subscriptions.
const (
	EventSubscriptionCreated        = "subscription_created"
	EventSubscriptionUpdated        = "subscription_updated"
	EventSubscriptionCancelled      = "subscription_cancelled"
	EventSubscriptionResumed        = "subscription_resumed"
	EventSubscriptionExpired        = "subscription_expired"
	EventSubscriptionPaused         = "subscription_paused"
	EventSubscriptionUnpaused       = "subscription_unpaused"
	EventSubscriptionPaymentFailed  = "subscription_payment_failed"
	EventSubscriptionPaymentSuccess = "subscription_payment_success"
)

// VerifySignature checks the hex-encoded HMAC-SHA256 of the raw request body
// against the shared signing secret. Comparison is constant-time.
func VerifySignature(secret string, payload []byte, signature string) error {
	if secret == "" {
		return ErrMissingSigningSecret
	}
	if signature == "" {
		return fmt.Errorf("%w: missing signature header", ErrInvalidSignature)
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	expected := hex.EncodeToString(h.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("%w: signature mismatch", ErrInvalidSignature)
	}
	return nil
}

// WebhookEvent is a parsed webhook delivery.
type WebhookEvent struct {
	EventName    string
	UserID       string
	TestMode     bool
	Subscription Subscription
	Raw          json.RawMessage
}

type webhookEnvelope struct {
	Meta struct {
		EventName  string `json:"event_name"`
		TestMode   bool   `json:"test_mode"`
		CustomData struct {
			UserID string `json:"user_id"`
		} `json:"custom_data"`
	} `json:"meta"`
	Data resource[SubscriptionAttributes] `json:"data"`
}

// ParseWebhookEvent decodes a webhook payload. It does not verify the
// signature; call VerifySignature on the raw body first.
func ParseWebhookEvent(payload []byte) (WebhookEvent, error) {
	var env webhookEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return WebhookEvent{}, errors.Join(ErrInvalidPayload, err)
	}
	if env.Meta.EventName == "" {
		return WebhookEvent{}, fmt.Errorf("%w: missing event name", ErrInvalidPayload)
	}

	return WebhookEvent{
		EventName: env.Meta.EventName,
		UserID:    env.Meta.CustomData.UserID,
		TestMode:  env.Meta.TestMode,
		Subscription: Subscription{
			ID:                     env.Data.ID,
			SubscriptionAttributes: env.Data.Attributes,
		},
		Raw: json.RawMessage(payload),
	}, nil
}

// IsSubscriptionEvent reports whether an event name belongs to the
// subscription lifecycle this service tracks.
func IsSubscriptionEvent(name string) bool {
	switch name {
	case EventSubscriptionCreated,
		EventSubscriptionUpdated,
		EventSubscriptionCancelled,
		EventSubscriptionResumed,
		EventSubscriptionExpired,
		EventSubscriptionPaused,
		EventSubscriptionUnpaused,
		EventSubscriptionPaymentFailed,
		EventSubscriptionPaymentSuccess:
		return true
	}
	return false
}
