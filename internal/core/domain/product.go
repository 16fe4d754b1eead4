package domain

import "time"

// Product is a catalog entry. Count is the stock quantity on hand.
type Product struct {
	ID          string
	Name        string
	ImageURL    string
	Description string
	Count       int
	Price       float64
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category groups products. Categories are seeded out of band and are read-only here.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
