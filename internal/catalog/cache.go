package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-storefront-checkout/internal/redisx"
)

// Cached is a read-through Redis layer over another Store. Redis errors are
// logged and treated as cache misses; the inner store stays the source of
// truth. Decrements invalidate the affected keys.
type Cached struct {
	Inner Store
	Redis *redis.Client
	Log   *zap.Logger
}

func (c *Cached) List(ctx context.Context) ([]Product, error) {
	if s, err := c.Redis.Get(ctx, redisx.KeyProducts).Result(); err == nil && s != "" {
		var out []Product
		if err := json.Unmarshal([]byte(s), &out); err == nil {
			return out, nil
		}
	}

	out, err := c.Inner.List(ctx)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(out); err == nil {
		if err := c.Redis.Set(ctx, redisx.KeyProducts, b, redisx.TTLCatalog).Err(); err != nil {
			c.Log.Warn("catalog cache set failed", zap.Error(err))
		}
	}
	return out, nil
}

func (c *Cached) Get(ctx context.Context, id string) (Product, error) {
	key := fmt.Sprintf(redisx.KeyProduct, id)
	if s, err := c.Redis.Get(ctx, key).Result(); err == nil && s != "" {
		var p Product
		if err := json.Unmarshal([]byte(s), &p); err == nil {
			return p, nil
		}
	}

	p, err := c.Inner.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if b, err := json.Marshal(p); err == nil {
		_ = c.Redis.Set(ctx, key, b, redisx.TTLCatalog).Err()
	}
	return p, nil
}

func (c *Cached) DecrementInventory(ctx context.Context, lines []InventoryLine) error {
	if err := c.Inner.DecrementInventory(ctx, lines); err != nil {
		return err
	}

	keys := []string{redisx.KeyProducts}
	seen := map[string]bool{}
	for _, ln := range lines {
		if !seen[ln.ProductID] {
			seen[ln.ProductID] = true
			keys = append(keys, fmt.Sprintf(redisx.KeyProduct, ln.ProductID))
		}
	}
	if err := c.Redis.Del(ctx, keys...).Err(); err != nil {
		c.Log.Warn("catalog cache invalidation failed", zap.Error(err))
	}
	return nil
}

var _ Store = (*Cached)(nil)
