package lemonsqueezy

import "errors"

var (
	ErrMissingAPIKey        = errors.New("lemonsqueezy API key is required")
	ErrMissingSigningSecret = errors.New("lemonsqueezy signing secret is required")
	ErrMissingStoreID       = errors.New("lemonsqueezy store id is required")
	ErrRequestFailed        = errors.New("lemonsqueezy request failed")
	ErrUnexpectedStatus     = errors.New("lemonsqueezy returned an unexpected status")
	ErrNotFound             = errors.New("lemonsqueezy resource not found")
	ErrInvalidSignature     = errors.New("webhook signature verification failed")
	ErrInvalidPayload       = errors.New("invalid webhook payload")
)
