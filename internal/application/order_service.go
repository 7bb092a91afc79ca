package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/croshet/storefront-api/internal/domain/entity"
	"github.com/croshet/storefront-api/internal/domain/repository"
	"github.com/croshet/storefront-api/pkg/helpers"
	"github.com/croshet/storefront-api/pkg/mailer"
)

// OrderService owns checkout and the admin order dashboard operations.
type OrderService struct {
	Orders   repository.OrderRepository
	Products repository.ProductRepository
	Carts    repository.CartRepository
	Logger   *logrus.Logger
	Mail     *helpers.RabbitPublisher // nil disables confirmation emails
}

// CheckoutLine is a requested order line. Unit prices are never taken from
// the client; they are snapshotted from the catalog at checkout.
type CheckoutLine struct {
	ProductID string
	Quantity  int
}

// Checkout creates a pending order from the given lines, computes the total
// server-side, and clears the account's cart.
func (s *OrderService) Checkout(ctx context.Context, user *entity.User, lines []CheckoutLine, shippingFeeCents int64) (*entity.Order, error) {
	if len(lines) == 0 {
		return nil, ErrInvalidQuantity
	}
	o := &entity.Order{
		UserID:           user.ID,
		ShippingFeeCents: shippingFeeCents,
		Status:           entity.OrderPending,
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		p, err := s.Products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, ErrProductNotFound
		}
		o.Items = append(o.Items, entity.OrderItem{
			ProductID:      p.ID,
			Name:           p.Name,
			UnitPriceCents: p.PriceCents,
			Quantity:       line.Quantity,
		})
		o.TotalCents += p.PriceCents * int64(line.Quantity)
	}
	o.TotalCents += shippingFeeCents

	if err := s.Orders.Create(ctx, o); err != nil {
		return nil, err
	}

	if s.Carts != nil {
		if err := s.Carts.Clear(ctx, user.ID); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", user.ID).Warn("cart clear after checkout failed")
		}
	}

	s.enqueueConfirmation(ctx, user, o)
	return o, nil
}

// ListMine returns the caller's orders, newest first.
func (s *OrderService) ListMine(ctx context.Context, userID string) ([]*entity.Order, error) {
	return s.Orders.ListByUser(ctx, userID)
}

// ListAll returns every order (admin dashboard).
func (s *OrderService) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return s.Orders.ListAll(ctx)
}

// UpdateStatus moves a pending order to completed or cancelled.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	o, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !entity.ValidStatusChange(o.Status, status) {
		return nil, ErrInvalidStatusChange
	}
	if err := s.Orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	o.Status = status
	return o, nil
}

func (s *OrderService) enqueueConfirmation(ctx context.Context, user *entity.User, o *entity.Order) {
	if s.Mail == nil {
		return
	}
	job := mailer.EmailJob{
		To:      user.Email,
		Subject: "Your Croshet order is in",
		Text: fmt.Sprintf("Hi %s, we received your order %s (%d item(s), total %d.%02d). We'll let you know when it ships.",
			user.FullName, o.ID, len(o.Items), o.TotalCents/100, o.TotalCents%100),
	}
	if err := s.Mail.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("order_id", o.ID).Warn("failed to enqueue order email")
	}
}
