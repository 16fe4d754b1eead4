package ports

import (
	"context"
	"time"

	"github.com/99minutos/shop-api/internal/core/domain"
)

// SessionClaims is the identity carried by a verified session token.
type SessionClaims struct {
	TokenID   string
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(user *domain.User) (string, SessionClaims, error)
}

// TokenVerifier validates session tokens and resolves them to claims.
type TokenVerifier interface {
	Verify(token string) (SessionClaims, error)
}

// TokenManager issues and verifies tokens with the same key material.
type TokenManager interface {
	TokenIssuer
	TokenVerifier
}

// RevocationStore remembers tokens that were logged out before they expired.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
