package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/99minutos/shop-api/internal/api/middleware"
	"github.com/99minutos/shop-api/internal/core/domain"
	"github.com/99minutos/shop-api/internal/core/ports"
)

func TestCartHandler_GetCart_Empty(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		getFn: func(_ context.Context, userID string) (*domain.CartView, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user %s", userID)
			}
			view := domain.NewCartView(userID, nil, nil)
			return &view, nil
		},
	}
	handler := NewCartHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/api/cart", "")
	c.Set(middleware.ContextKeyUserID, "u1")

	if err := handler.GetCart(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := rec.Body.String(); body != "{\"items\":[],\"sum\":0}\n" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestCartHandler_GetCart_WithoutSession(t *testing.T) {
	e := newTestEcho()
	handler := NewCartHandler(&stubCartService{})

	c, _ := newJSONContext(e, http.MethodGet, "/api/cart", "")
	if err := handler.GetCart(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestCartHandler_SaveCart(t *testing.T) {
	e := newTestEcho()
	p := sampleProduct()
	stub := &stubCartService{
		saveFn: func(_ context.Context, userID string, items []ports.CartItemInput) (*domain.CartView, error) {
			if userID != "u1" || len(items) != 1 || items[0].ProductID != productID || items[0].Quantity != 2 {
				t.Fatalf("unexpected save: %s %+v", userID, items)
			}
			view := domain.NewCartView(userID,
				[]domain.CartItem{{ProductID: productID, Quantity: 2}},
				map[string]domain.Product{productID: *p})
			return &view, nil
		},
	}
	handler := NewCartHandler(stub)

	c, rec := newJSONContext(e, http.MethodPut, "/", `{"items":[{"productId":"`+productID+`","quantity":2}]}`)
	c.Set(middleware.ContextKeyUserID, "u1")
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	if err := handler.SaveCart(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Quantity != 2 || resp.Sum != 39.98 {
		t.Fatalf("unexpected cart: %+v", resp)
	}
}

func TestCartHandler_SaveCart_ForeignUserForbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		saveFn: func(context.Context, string, []ports.CartItemInput) (*domain.CartView, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewCartHandler(stub)

	// Body is deliberately malformed: ownership is checked first.
	c, _ := newJSONContext(e, http.MethodPut, "/", "not-json")
	c.Set(middleware.ContextKeyUserID, "u1")
	c.SetParamNames("userId")
	c.SetParamValues("u2")

	if err := handler.SaveCart(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCartHandler_SaveCart_RejectsZeroQuantity(t *testing.T) {
	e := newTestEcho()
	handler := NewCartHandler(&stubCartService{})

	c, _ := newJSONContext(e, http.MethodPut, "/", `{"items":[{"productId":"`+productID+`","quantity":0}]}`)
	c.Set(middleware.ContextKeyUserID, "u1")
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	if err := handler.SaveCart(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCartHandler_SaveCart_RejectsHugeQuantity(t *testing.T) {
	e := newTestEcho()
	handler := NewCartHandler(&stubCartService{})

	c, _ := newJSONContext(e, http.MethodPut, "/", `{"items":[{"productId":"`+productID+`","quantity":9223372036854775807}]}`)
	c.Set(middleware.ContextKeyUserID, "u1")
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	if err := handler.SaveCart(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
