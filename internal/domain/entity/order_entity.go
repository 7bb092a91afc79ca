package entity

import "time"

// Order statuses. A pending order may move to completed or cancelled;
// both of those are terminal.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// OrderItem is a line captured at checkout. UnitPriceCents is a snapshot
// of the product price at order time.
type OrderItem struct {
	ProductID      string
	Name           string
	UnitPriceCents int64
	Quantity       int
}

type Order struct {
	ID               string
	UserID           string
	Items            []OrderItem
	ShippingFeeCents int64
	TotalCents       int64
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidStatusChange reports whether an order may move from its current
// status to the requested one.
func ValidStatusChange(from, to string) bool {
	if from != OrderPending {
		return false
	}
	return to == OrderCompleted || to == OrderCancelled
}
