package billing

import "errors"

var (
	ErrCustomerNotFound      = errors.New("billing customer not found")
	ErrSubscriptionNotFound  = errors.New("billing subscription not found")
	ErrCacheMiss             = errors.New("portal link not cached")
	ErrPortalLinkUnavailable = errors.New("customer portal link unavailable")
	ErrMissingIdentity       = errors.New("caller identity is required")
)
