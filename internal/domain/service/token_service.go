package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the opaque session tokens handed to visitors
// at login and registration time.
type TokenService interface {
	// Issue creates a signed session token for the given identity.
	Issue(email, username string) (string, error)

	// Validate checks the signature and expiry of a token and returns its claims.
	Validate(token string) (*SessionClaims, error)
}
