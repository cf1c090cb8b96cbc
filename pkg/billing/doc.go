// Package billing bridges local subscription records to the LemonSqueezy
// API. It verifies and applies subscription webhooks, proxies checkout and
// customer portal requests for authenticated users, and synchronizes the
// vendor catalog and subscription list into local storage with idempotent
// keyed upserts.
package billing
