package ports

import (
	"context"

	"github.com/99minutos/shop-api/internal/core/domain"
)

// CartItemInput is one requested cart line.
type CartItemInput struct {
	ProductID string
	Quantity  int
}

// CartService defines the shopping-cart use cases. Callers are responsible
// for checking that the acting user owns userID.
type CartService interface {
	GetCart(ctx context.Context, userID string) (*domain.CartView, error)
	SaveCart(ctx context.Context, userID string, items []CartItemInput) (*domain.CartView, error)
}
