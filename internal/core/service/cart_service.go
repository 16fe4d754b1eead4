package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/shop-api/internal/api/metrics"
	"github.com/99minutos/shop-api/internal/core/domain"
	"github.com/99minutos/shop-api/internal/core/ports"
)

// MaxItemQuantity caps a single cart line, after duplicate lines are merged.
const MaxItemQuantity = 10000

// CartService implements the shopping-cart use cases.
type CartService struct {
	carts    ports.CartRepository
	products ports.ProductRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewCartService(carts ports.CartRepository, products ports.ProductRepository, log zerolog.Logger) *CartService {
	return &CartService{carts: carts, products: products, log: log, now: time.Now}
}

// GetCart returns the user's cart joined with current product data. A user
// who never saved a cart gets an empty view, not an error.
func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.CartView, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		view := domain.NewCartView(userID, nil, nil)
		return &view, nil
	}
	return s.resolve(ctx, userID, cart.Items)
}

// SaveCart replaces the stored items wholesale. Duplicate product lines are
// merged. There is no version check, so concurrent saves are last-write-wins.
func (s *CartService) SaveCart(ctx context.Context, userID string, in []ports.CartItemInput) (*domain.CartView, error) {
	items, err := mergeItems(in)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.productsByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, fmt.Errorf("%w: unknown product %s", domain.ErrValidation, id)
		}
	}

	if err := s.carts.Replace(ctx, &domain.Cart{
		UserID:    userID,
		Items:     items,
		UpdatedAt: s.now().UTC(),
	}); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to save cart")
		return nil, err
	}

	metrics.CartSavesTotal.Inc()
	s.log.Info().Str("user_id", userID).Int("items", len(items)).Msg("cart saved")

	view := domain.NewCartView(userID, items, products)
	return &view, nil
}

func (s *CartService) resolve(ctx context.Context, userID string, items []domain.CartItem) (*domain.CartView, error) {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.productsByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	view := domain.NewCartView(userID, items, products)
	return &view, nil
}

func (s *CartService) productsByID(ctx context.Context, ids []string) (map[string]domain.Product, error) {
	out := make(map[string]domain.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	found, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range found {
		out[p.ID] = *p
	}
	return out, nil
}

// mergeItems validates quantities and folds repeated product lines into the
// first occurrence, preserving the order in which products first appear.
func mergeItems(in []ports.CartItemInput) ([]domain.CartItem, error) {
	items := make([]domain.CartItem, 0, len(in))
	index := make(map[string]int, len(in))
	for _, it := range in {
		if it.ProductID == "" {
			return nil, fmt.Errorf("%w: product id is required", domain.ErrValidation)
		}
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
		}
		if it.Quantity > MaxItemQuantity {
			return nil, fmt.Errorf("%w: quantity must be at most %d", domain.ErrValidation, MaxItemQuantity)
		}
		if i, ok := index[it.ProductID]; ok {
			// both operands are within the cap, so the sum cannot overflow
			if items[i].Quantity+it.Quantity > MaxItemQuantity {
				return nil, fmt.Errorf("%w: quantity must be at most %d", domain.ErrValidation, MaxItemQuantity)
			}
			items[i].Quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(items)
		items = append(items, domain.CartItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items, nil
}
