package service

import (
	"time"

	"asana/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	// UserID is decoded from the registered subject claim after verification.
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// A session token is a self-contained signed assertion; nothing is persisted
// server-side and tokens are never revoked before expiry.
type TokenService interface {
	// Issue creates a signed, time-limited token for an authenticated user.
	Issue(user *entity.User) (string, error)

	// Validate checks the signature and expiry of a token string.
	// Expired tokens return ErrTokenExpired; anything else that fails returns ErrTokenInvalid.
	Validate(tokenString string) (*Claims, error)

	// TokenTTL returns the configured lifetime of issued tokens.
	TokenTTL() time.Duration
}
