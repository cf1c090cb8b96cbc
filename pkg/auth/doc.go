// Package auth resolves caller identity from HS256-signed bearer tokens.
//
// The token's subject claim carries the local user UUID and the email claim
// the billing email. Middleware validates the Authorization header and puts
// an Identity into the request context for handlers to read via
// IdentityFromContext.
package auth
