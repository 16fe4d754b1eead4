package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/shop-api/internal/api/metrics"
	"github.com/99minutos/shop-api/internal/core/domain"
	"github.com/99minutos/shop-api/internal/core/ports"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// CatalogService implements product and category use cases.
type CatalogService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	cache      ports.CategoryCache
	log        zerolog.Logger
	now        func() time.Time
}

// NewCatalogService wires the catalog use cases. cache may be nil.
func NewCatalogService(products ports.ProductRepository, categories ports.CategoryRepository, cache ports.CategoryCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		cache:      cache,
		log:        log,
		now:        time.Now,
	}
}

// ListProducts returns one page of products. It asks the store for one extra
// row to learn whether anything lies past the requested page.
func (s *CatalogService) ListProducts(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
	skip, limit, ok := paginate(in.Page, in.Limit)
	if !ok {
		// the offset is past anything the store can hold
		return &ports.ProductPage{Products: []*domain.Product{}, LastPage: true}, nil
	}

	found, err := s.products.List(ctx, ports.ProductFilter{
		Search: strings.TrimSpace(in.Search),
		Skip:   skip,
		Limit:  limit + 1,
	})
	if err != nil {
		return nil, err
	}

	page := &ports.ProductPage{Products: found, LastPage: len(found) <= limit}
	if !page.LastPage {
		page.Products = found[:limit]
	}
	if page.Products == nil {
		page.Products = []*domain.Product{}
	}
	return page, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	now := s.now().UTC()
	created, err := s.products.Create(ctx, &domain.Product{
		Name:        strings.TrimSpace(in.Name),
		ImageURL:    in.ImageURL,
		Description: in.Description,
		Count:       in.Count,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductMutationsTotal.WithLabelValues("create").Inc()
	s.log.Info().Str("product_id", created.ID).Msg("product created")
	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ports.ProductUpdateInput) (*domain.Product, error) {
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
	}

	updated, err := s.products.Update(ctx, id, ports.ProductPatch{
		Name:        in.Name,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		Count:       in.Count,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		UpdatedAt:   s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductMutationsTotal.WithLabelValues("update").Inc()
	s.log.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

// DeleteProduct is idempotent: removing a product that does not exist succeeds.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	removed, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		s.log.Debug().Str("product_id", id).Msg("delete of missing product ignored")
		return nil
	}

	metrics.ProductMutationsTotal.WithLabelValues("delete").Inc()
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// ListCategories reads through the category cache when one is configured.
// Cache failures are logged and never fail the request.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("category cache read failed")
		case ok:
			metrics.CategoryCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.CategoryCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.log.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

// paginate clamps the raw page/limit query values and converts them to an offset.
// ok is false when the offset would overflow an int.
func paginate(page, limit int) (skip, size int, ok bool) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if page-1 > math.MaxInt/limit {
		return 0, limit, false
	}
	return (page - 1) * limit, limit, true
}
