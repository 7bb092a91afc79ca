package entity

import "time"

// Product is a catalog item. Prices are stored in the smallest currency
// unit to keep arithmetic exact.
type Product struct {
	ID          string
	Name        string
	Description string
	PriceCents  int64
	Currency    string
	ImageURL    string
	Category    string
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
