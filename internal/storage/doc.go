// Package storage provides the persistence implementations behind the
// billing service interfaces: PostgreSQL for billing records, Redis for
// cached portal links, and MongoDB for the webhook event archive.
package storage
