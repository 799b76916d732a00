package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token verification failure kinds. All of them resolve to an
// unauthenticated result at the delivery layer.
var (
	ErrTokenMissing          = errors.New("authorization token is missing")
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed access token whose subject is the user ID.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks signature and expiry and returns the embedded claims.
	// Failures are reported as one of the Err* sentinel errors above.
	Validate(tokenString string) (*Claims, error)
}
