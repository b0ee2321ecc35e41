package orders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-storefront-checkout/internal/redisx"
)

// Cached fronts another Store with a Redis cache so order lookups right
// after checkout (the thank-you page) skip the database. Orders are
// immutable once written, so there is nothing to invalidate. Redis errors
// degrade to the inner store.
type Cached struct {
	Inner Store
	Redis *redis.Client
	Log   *zap.Logger
}

func (c *Cached) Create(ctx context.Context, o Order) error {
	if err := c.Inner.Create(ctx, o); err != nil {
		return err
	}
	if b, err := json.Marshal(o); err == nil {
		key := fmt.Sprintf(redisx.KeyOrder, o.OrderID)
		if err := c.Redis.Set(ctx, key, b, redisx.TTLOrder).Err(); err != nil {
			c.Log.Warn("order cache set failed", zap.String("order_id", o.OrderID), zap.Error(err))
		}
	}
	return nil
}

func (c *Cached) GetByID(ctx context.Context, orderID string) (Order, error) {
	key := fmt.Sprintf(redisx.KeyOrder, orderID)
	if s, err := c.Redis.Get(ctx, key).Result(); err == nil && s != "" {
		var o Order
		if err := json.Unmarshal([]byte(s), &o); err == nil {
			return o, nil
		}
	}

	o, err := c.Inner.GetByID(ctx, orderID)
	if err != nil {
		return Order{}, err
	}
	if b, err := json.Marshal(o); err == nil {
		_ = c.Redis.Set(ctx, key, b, redisx.TTLOrder).Err()
	}
	return o, nil
}

var _ Store = (*Cached)(nil)
