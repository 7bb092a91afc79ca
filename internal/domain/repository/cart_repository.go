package repository

import (
	"context"

	"github.com/croshet/storefront-api/internal/domain/entity"
)

// CartRepository persists one cart per account. Every mutation is written
// through immediately; Get rehydrates the full cart.
type CartRepository interface {
	Get(ctx context.Context, userID string) (*entity.Cart, error)
	SetItem(ctx context.Context, userID string, item entity.CartItem) error
	RemoveItem(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}
