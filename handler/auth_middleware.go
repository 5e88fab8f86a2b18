package handler

import (
	"context"
	"go-bankist/common"
	"go-bankist/service"
	"net/http"
	"strings"
)

type contextKey string

const (
	UsernameKey  contextKey = "username"
	SessionIDKey contextKey = "sessionID"
)

// sessionChecker reports whether a session id is still the open session.
type sessionChecker interface {
	ActiveSession(sessionID string) bool
}

// NewAuthMiddleware requires a valid bearer token whose session is still open.
func NewAuthMiddleware(tokens *service.TokenService, sessions sessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				err := common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil)
				err.Send(w)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				err := common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil)
				err.Send(w)
				return
			}

			claims, err := tokens.Parse(headerParts[1])
			if err != nil {
				appErr := common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err)
				appErr.Send(w)
				return
			}

			if !sessions.ActiveSession(claims.SessionID) {
				appErr := common.NewAppError(http.StatusUnauthorized, "Session is no longer active", nil)
				appErr.Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
			ctx = context.WithValue(ctx, SessionIDKey, claims.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
