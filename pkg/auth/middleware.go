package auth

import (
	"net/http"
	"strings"
)

// ErrorRenderer writes an authentication failure response. It lets the
// transport layer keep a consistent error body shape.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, err error)

// Middleware validates "Authorization: Bearer <token>" headers and injects
// the caller Identity into the request context. Requests without a valid
// token are rejected via the renderer.
func Middleware(svc *TokenService, render ErrorRenderer) func(next http.Handler) http.Handler {
	if render == nil {
		render = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				render(w, r, err)
				return
			}

			claims, err := svc.Parse(token)
			if err != nil {
				render(w, r, err)
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				render(w, r, err)
				return
			}

			ctx := SetIdentity(r.Context(), Identity{UserID: userID, Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an Authorization header per RFC 6750.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}
