package auth

import "errors"

var (
	ErrMissingToken            = errors.New("auth: missing bearer token")
	ErrInvalidToken            = errors.New("auth: invalid token")
	ErrExpiredToken            = errors.New("auth: token is expired")
	ErrInvalidSignature        = errors.New("auth: invalid signature")
	ErrUnexpectedSigningMethod = errors.New("auth: unexpected signing method")
	ErrMissingSigningKey       = errors.New("auth: missing signing key")
	ErrInvalidClaims           = errors.New("auth: invalid claims")
)
