package ports

import (
	"context"

	"github.com/99minutos/shop-api/internal/core/domain"
)

// ListProductsInput carries the raw query parameters of GET /api/products.
// Zero Limit or Page means "use the default".
type ListProductsInput struct {
	Search string
	Limit  int
	Page   int
}

// ProductPage is one slice of the catalog.
type ProductPage struct {
	Products []*domain.Product
	// LastPage is true when no product exists beyond this page.
	LastPage bool
}

// ProductInput carries the fields of a new product.
type ProductInput struct {
	Name        string
	ImageURL    string
	Description string
	Count       int
	Price       float64
	CategoryID  string
}

// ProductUpdateInput carries a partial product update. Nil fields are left untouched.
type ProductUpdateInput struct {
	Name        *string
	ImageURL    *string
	Description *string
	Count       *int
	Price       *float64
	CategoryID  *string
}

// CatalogService defines the product and category use cases.
type CatalogService interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductPage, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input ProductUpdateInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
