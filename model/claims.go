package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims bind a bearer token to one login session.
type SessionClaims struct {
	Username  string `json:"username"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}
