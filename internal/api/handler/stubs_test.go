package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shop-api/internal/core/domain"
	"github.com/99minutos/shop-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	logoutFn   func(ctx context.Context, token string) error
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*ports.AuthResult, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx, token)
}

type stubCatalogService struct {
	listFn       func(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error)
	getFn        func(ctx context.Context, id string) (*domain.Product, error)
	createFn     func(ctx context.Context, in ports.ProductInput) (*domain.Product, error)
	updateFn     func(ctx context.Context, id string, in ports.ProductUpdateInput) (*domain.Product, error)
	deleteFn     func(ctx context.Context, id string) error
	categoriesFn func(ctx context.Context) ([]domain.Category, error)
}

func (s *stubCatalogService) ListProducts(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
	return s.listFn(ctx, in)
}

func (s *stubCatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubCatalogService) CreateProduct(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

func (s *stubCatalogService) UpdateProduct(ctx context.Context, id string, in ports.ProductUpdateInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubCatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubCatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoriesFn(ctx)
}

type stubCartService struct {
	getFn  func(ctx context.Context, userID string) (*domain.CartView, error)
	saveFn func(ctx context.Context, userID string, items []ports.CartItemInput) (*domain.CartView, error)
}

func (s *stubCartService) GetCart(ctx context.Context, userID string) (*domain.CartView, error) {
	return s.getFn(ctx, userID)
}

func (s *stubCartService) SaveCart(ctx context.Context, userID string, items []ports.CartItemInput) (*domain.CartView, error) {
	return s.saveFn(ctx, userID, items)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
