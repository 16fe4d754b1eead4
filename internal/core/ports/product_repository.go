package ports

import (
	"context"
	"time"

	"github.com/99minutos/shop-api/internal/core/domain"
)

// ProductFilter carries the query parameters for listing products.
type ProductFilter struct {
	Search string // optional: case-insensitive substring of name or description
	Skip   int
	Limit  int
}

// ProductPatch holds the fields of a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	ImageURL    *string
	Description *string
	Count       *int
	Price       *float64
	CategoryID  *string
	UpdatedAt   time.Time
}

// ProductRepository defines persistence for catalog products.
type ProductRepository interface {
	// List returns at most filter.Limit products starting at filter.Skip.
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindByIDs returns the products that exist among ids; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	// Delete reports whether a document was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

// CategoryRepository lists product categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
}

// CategoryCache is an optional read-through cache in front of CategoryRepository.
type CategoryCache interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context) (categories []domain.Category, ok bool, err error)
	Set(ctx context.Context, categories []domain.Category) error
}
