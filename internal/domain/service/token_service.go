package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService issues and verifies the stateless bearer tokens that guard
// every account-scoped operation. Validation fails closed: signature mismatch,
// malformed payload and expiry all surface as the same error to callers.
type TokenService interface {
	// Generate creates a signed access token for the given account.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks a token string and returns its claims when valid.
	Validate(tokenString string) (*Claims, error)
}
