package ports

import (
	"context"

	"github.com/99minutos/shop-api/internal/core/domain"
)

// AuthResult is returned by Register and Login: the account and its fresh session token.
type AuthResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
}
