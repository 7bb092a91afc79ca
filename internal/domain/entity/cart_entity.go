package entity

// CartItem is one line in an account's cart. Quantity is always >= 1;
// setting it to zero or below removes the line.
type CartItem struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// Cart is the full cart for one account.
type Cart struct {
	Items []CartItem `json:"items"`
}

// SubtotalCents sums unit price times quantity over all lines.
func (c *Cart) SubtotalCents() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.UnitPriceCents * int64(it.Quantity)
	}
	return total
}
