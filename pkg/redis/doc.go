// Package redis provides connection bootstrap helpers for go-redis/v9:
// env-backed Config, Connect with retries, and a Healthcheck closure.
package redis
