// Package mongo provides connection bootstrap helpers for the official
// MongoDB driver: env-backed Config, New/NewWithDatabase with retries, and a
// Healthcheck closure.
package mongo
