package ports

import (
	"context"

	"github.com/99minutos/shop-api/internal/core/domain"
)

// UserRepository defines persistence for shop accounts.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account uses the email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create returns domain.ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
