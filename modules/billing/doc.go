// Package billing exposes the HTTP surface of the billing bridge: the
// vendor webhook receiver, checkout and customer portal endpoints for
// authenticated users, and the manual synchronization trigger.
package billing
