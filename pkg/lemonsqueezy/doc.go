// Package lemonsqueezy is a minimal client for the LemonSqueezy REST API
// covering the resources this service needs: customers, checkouts,
// subscriptions, products and variants, plus webhook signature verification.
//
// The API speaks JSON:API (application/vnd.api+json) with bearer-token
// authentication and page[number]/page[size] pagination. List calls return a
// Pagination value so callers can walk all pages.
package lemonsqueezy
