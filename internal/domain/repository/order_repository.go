package repository

import (
	"context"

	"github.com/croshet/storefront-api/internal/domain/entity"
)

// OrderRepository defines the interface for order persistence.
// Create must write the order and its items atomically.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
	ListAll(ctx context.Context) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
