package handlers

import (
	"time"

	"github.com/croshet/storefront-api/internal/domain/entity"
)

// UserView is the identity shape returned to clients. The password hash
// never appears here.
type UserView struct {
	ID                   string     `json:"id"`
	FullName             string     `json:"full_name"`
	Username             string     `json:"username"`
	Email                string     `json:"email"`
	AvatarURL            string     `json:"avatar"`
	Role                 string     `json:"role"`
	LastUsernameChangeAt *time.Time `json:"last_username_change_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

func toUserView(u *entity.User) UserView {
	return UserView{
		ID:                   u.ID,
		FullName:             u.FullName,
		Username:             u.Username,
		Email:                u.Email,
		AvatarURL:            u.AvatarURL,
		Role:                 u.Role,
		LastUsernameChangeAt: u.LastUsernameChangeAt,
		CreatedAt:            u.CreatedAt,
	}
}

type ProductView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProductView(p *entity.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductViews(ps []*entity.Product) []ProductView {
	out := make([]ProductView, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductView(p))
	}
	return out
}

type OrderItemView struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

type OrderView struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	Items            []OrderItemView `json:"items"`
	ShippingFeeCents int64           `json:"shipping_fee_cents"`
	TotalCents       int64           `json:"total_cents"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

func toOrderView(o *entity.Order) OrderView {
	items := make([]OrderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemView{
			ProductID:      it.ProductID,
			Name:           it.Name,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
		})
	}
	return OrderView{
		ID:               o.ID,
		UserID:           o.UserID,
		Items:            items,
		ShippingFeeCents: o.ShippingFeeCents,
		TotalCents:       o.TotalCents,
		Status:           o.Status,
		CreatedAt:        o.CreatedAt,
	}
}

func toOrderViews(os []*entity.Order) []OrderView {
	out := make([]OrderView, 0, len(os))
	for _, o := range os {
		out = append(out, toOrderView(o))
	}
	return out
}

type CartView struct {
	Items         []entity.CartItem `json:"items"`
	SubtotalCents int64             `json:"subtotal_cents"`
}

func toCartView(c *entity.Cart) CartView {
	return CartView{Items: c.Items, SubtotalCents: c.SubtotalCents()}
}
