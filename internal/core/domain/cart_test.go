package domain

import "testing"

func TestNewCartView_SumsCurrentPrices(t *testing.T) {
	products := map[string]Product{
		"p1": {ID: "p1", Name: "Shirt", Price: 10.10},
		"p2": {ID: "p2", Name: "Hat", Price: 0.1},
	}
	items := []CartItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 3},
	}

	view := NewCartView("u1", items, products)

	if len(view.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(view.Lines))
	}
	if view.Sum != 20.5 {
		t.Fatalf("expected sum 20.5, got %v", view.Sum)
	}
	if view.Lines[0].Product.ID != "p1" || view.Lines[1].Product.ID != "p2" {
		t.Fatalf("expected item order to be preserved, got %+v", view.Lines)
	}
}

func TestNewCartView_DropsDeletedProducts(t *testing.T) {
	products := map[string]Product{"p1": {ID: "p1", Price: 5}}
	items := []CartItem{
		{ProductID: "gone", Quantity: 4},
		{ProductID: "p1", Quantity: 1},
	}

	view := NewCartView("u1", items, products)

	if len(view.Lines) != 1 || view.Lines[0].Product.ID != "p1" {
		t.Fatalf("unexpected lines: %+v", view.Lines)
	}
	if view.Sum != 5 {
		t.Fatalf("expected sum 5, got %v", view.Sum)
	}
}

func TestNewCartView_Empty(t *testing.T) {
	view := NewCartView("u1", nil, nil)
	if view.Lines == nil {
		t.Fatalf("expected non-nil lines so the payload renders []")
	}
	if view.Sum != 0 {
		t.Fatalf("expected zero sum, got %v", view.Sum)
	}
}
