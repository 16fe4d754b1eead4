package ports

import (
	"context"

	"github.com/99minutos/shop-api/internal/core/domain"
)

// CartRepository persists one cart document per user.
type CartRepository interface {
	// FindByUserID returns (nil, nil) when the user has never saved a cart.
	FindByUserID(ctx context.Context, userID string) (*domain.Cart, error)
	// Replace upserts the cart, overwriting any stored items. Last write wins.
	Replace(ctx context.Context, cart *domain.Cart) error
}
