// Package auth verifies the caller's Bearer token and hands the verified
// user id to the handlers through the request context. The services never
// see a token; identity verification stops here.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"hotelbooker/internal/lib/api/response"
	"hotelbooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

type ctxKey struct{}

var userIDKey ctxKey

// New returns a middleware that rejects requests without a valid HS256
// Bearer token carrying a numeric user_id claim.
func New(log *slog.Logger, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				unauthorized(w, r, "missing bearer token")
				return
			}

			raw := strings.TrimPrefix(authHeader, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				if err != nil {
					log.Debug("token rejected", sl.Err(err))
				}
				unauthorized(w, r, "invalid token")
				return
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w, r, "invalid token")
				return
			}

			// Numeric JSON claims decode as float64.
			id, ok := claims["user_id"].(float64)
			if !ok || id <= 0 {
				unauthorized(w, r, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), int(id))))
		}

		return http.HandlerFunc(fn)
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(msg))
}

// WithUserID stores a verified user id in the context.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID extracts the verified user id placed in the context by New.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}
