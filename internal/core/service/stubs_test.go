package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/shop-api/internal/core/domain"
	"github.com/99minutos/shop-api/internal/core/ports"
	"github.com/99minutos/shop-api/internal/security"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User // keyed by email
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}
	clone := *user
	clone.ID = "user-" + strconv.Itoa(len(r.users)+1)
	r.users[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// ---------------------------------------------------------------------------
// Revocations
// ---------------------------------------------------------------------------

type stubRevocations struct {
	revoked   map[string]time.Duration
	revokeErr error
}

func newStubRevocations() *stubRevocations {
	return &stubRevocations{revoked: make(map[string]time.Duration)}
}

func (s *stubRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if s.revokeErr != nil {
		return s.revokeErr
	}
	s.revoked[tokenID] = ttl
	return nil
}

func (s *stubRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := s.revoked[tokenID]
	return ok, nil
}

func newTokens() *security.JWTManager {
	return security.NewJWTManager("secret", time.Hour)
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	byID       map[string]*domain.Product
	order      []string // insertion order, newest last
	nextID     int
	listErr    error
	lastFilter ports.ProductFilter
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) seed(name, description string, price float64) *domain.Product {
	p, _ := r.Create(context.Background(), &domain.Product{Name: name, Description: description, Price: price})
	return p
}

// List mirrors the Mongo query: newest first, case-insensitive substring match.
func (r *stubProductRepo) List(_ context.Context, f ports.ProductFilter) ([]*domain.Product, error) {
	r.lastFilter = f
	if r.listErr != nil {
		return nil, r.listErr
	}

	var matched []*domain.Product
	for i := len(r.order) - 1; i >= 0; i-- {
		p := r.byID[r.order[i]]
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Description), q) {
				continue
			}
		}
		clone := *p
		matched = append(matched, &clone)
	}

	if f.Skip >= len(matched) {
		return nil, nil
	}
	end := f.Skip + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[f.Skip:end], nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	clone := *p
	clone.ID = "prod-" + strconv.Itoa(r.nextID)
	r.byID[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Count != nil {
		p.Count = *patch.Count
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	p.UpdatedAt = patch.UpdatedAt
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

type stubCategoryRepo struct {
	categories []domain.Category
	calls      int
}

func (r *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.calls++
	out := append([]domain.Category(nil), r.categories...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type stubCategoryCache struct {
	stored []domain.Category
	getErr error
	sets   int
}

func (c *stubCategoryCache) Get(_ context.Context) ([]domain.Category, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	if c.stored == nil {
		return nil, false, nil
	}
	return c.stored, true, nil
}

func (c *stubCategoryCache) Set(_ context.Context, categories []domain.Category) error {
	c.sets++
	c.stored = categories
	return nil
}

// ---------------------------------------------------------------------------
// Carts
// ---------------------------------------------------------------------------

type stubCartRepo struct {
	carts      map[string]*domain.Cart
	replaceErr error
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{carts: make(map[string]*domain.Cart)}
}

func (r *stubCartRepo) FindByUserID(_ context.Context, userID string) (*domain.Cart, error) {
	c, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	clone := *c
	clone.Items = append([]domain.CartItem(nil), c.Items...)
	return &clone, nil
}

func (r *stubCartRepo) Replace(_ context.Context, cart *domain.Cart) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	clone := *cart
	clone.Items = append([]domain.CartItem(nil), cart.Items...)
	r.carts[cart.UserID] = &clone
	return nil
}

var errBoom = errors.New("boom")
