package redisrepo

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/croshet/storefront-api/internal/domain/entity"
	"github.com/croshet/storefront-api/internal/domain/repository"
)

// CartRepository stores one Redis hash per account, field = product id,
// value = JSON-encoded line. Carts have no TTL; a checkout clears them.
type CartRepository struct {
	rdb *redis.Client
}

func NewCartRepository(rdb *redis.Client) *CartRepository {
	return &CartRepository{rdb: rdb}
}

func cartKey(userID string) string {
	return "cart:" + userID
}

func (r *CartRepository) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	data, err := r.rdb.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	cart := &entity.Cart{Items: make([]entity.CartItem, 0, len(data))}
	for _, raw := range data {
		var it entity.CartItem
		if err := json.Unmarshal([]byte(raw), &it); err != nil {
			// skip corrupt lines rather than failing the whole cart
			continue
		}
		cart.Items = append(cart.Items, it)
	}
	// HGetAll ordering is not stable; keep responses deterministic
	sort.Slice(cart.Items, func(i, j int) bool {
		return cart.Items[i].ProductID < cart.Items[j].ProductID
	})
	return cart, nil
}

func (r *CartRepository) SetItem(ctx context.Context, userID string, item entity.CartItem) error {
	b, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return r.rdb.HSet(ctx, cartKey(userID), item.ProductID, b).Err()
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID string) error {
	return r.rdb.HDel(ctx, cartKey(userID), productID).Err()
}

func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	return r.rdb.Del(ctx, cartKey(userID)).Err()
}

var _ repository.CartRepository = (*CartRepository)(nil)
