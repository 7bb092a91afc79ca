package application

import (
	"context"

	"github.com/croshet/storefront-api/internal/domain/entity"
	"github.com/croshet/storefront-api/internal/domain/repository"
)

// CartService implements the cart semantics: add merges quantities by
// product id, set-quantity removes the line at zero or below, and every
// mutation is persisted immediately.
type CartService struct {
	Carts    repository.CartRepository
	Products repository.ProductRepository
}

// Add puts quantity units of a product into the cart, merging with an
// existing line. The product must exist; its current price is snapshotted
// onto the line.
func (s *CartService) Add(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	p, err := s.Products.GetByID(ctx, productID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	cart, err := s.Carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	item := entity.CartItem{
		ProductID:      p.ID,
		Name:           p.Name,
		UnitPriceCents: p.PriceCents,
		Quantity:       quantity,
	}
	for _, existing := range cart.Items {
		if existing.ProductID == productID {
			item.Quantity += existing.Quantity
			break
		}
	}
	if err := s.Carts.SetItem(ctx, userID, item); err != nil {
		return nil, err
	}
	return s.Carts.Get(ctx, userID)
}

// SetQuantity replaces a line's quantity. Zero or below removes the line
// entirely.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		if err := s.Carts.RemoveItem(ctx, userID, productID); err != nil {
			return nil, err
		}
		return s.Carts.Get(ctx, userID)
	}

	cart, err := s.Carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, existing := range cart.Items {
		if existing.ProductID == productID {
			existing.Quantity = quantity
			if err := s.Carts.SetItem(ctx, userID, existing); err != nil {
				return nil, err
			}
			return s.Carts.Get(ctx, userID)
		}
	}
	return nil, ErrProductNotFound
}

// Remove deletes a line regardless of quantity.
func (s *CartService) Remove(ctx context.Context, userID, productID string) (*entity.Cart, error) {
	if err := s.Carts.RemoveItem(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.Carts.Get(ctx, userID)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.Carts.Clear(ctx, userID)
}

// Get rehydrates the cart.
func (s *CartService) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	return s.Carts.Get(ctx, userID)
}
