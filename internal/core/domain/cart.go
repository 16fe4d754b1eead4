package domain

import (
	"math"
	"time"
)

// CartItem references a product by id; the product itself is resolved at read time.
type CartItem struct {
	ProductID string
	Quantity  int
}

// Cart is the stored, per-user list of items. There is at most one cart per user.
type Cart struct {
	UserID    string
	Items     []CartItem
	UpdatedAt time.Time
}

// CartLine is a cart item joined with its current product.
type CartLine struct {
	Product  Product
	Quantity int
}

// CartView is what a client sees: resolved lines and the derived total.
type CartView struct {
	UserID string
	Lines  []CartLine
	Sum    float64
}

// NewCartView joins cart items with products, dropping items whose product no
// longer exists, and computes the total from current prices.
func NewCartView(userID string, items []CartItem, products map[string]Product) CartView {
	view := CartView{UserID: userID, Lines: make([]CartLine, 0, len(items))}
	for _, it := range items {
		p, ok := products[it.ProductID]
		if !ok {
			continue
		}
		view.Lines = append(view.Lines, CartLine{Product: p, Quantity: it.Quantity})
		view.Sum += p.Price * float64(it.Quantity)
	}
	view.Sum = math.Round(view.Sum*100) / 100
	return view
}
