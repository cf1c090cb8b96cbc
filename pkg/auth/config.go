package auth

// Config holds caller authentication settings.
type Config struct {
	SigningKey string `env:"AUTH_SIGNING_KEY,required"` // SigningKey is the HS256 secret shared with the account system.
}
