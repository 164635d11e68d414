package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/modabay/storefront-api/internal/api/metrics"
	"github.com/modabay/storefront-api/internal/core/domain"
)

const (
	featuredKey = "featured_products"

	// The cache is rewritten on every featured-flag toggle, so the TTL only
	// bounds staleness after out-of-band data changes.
	featuredTTL = time.Hour
)

// ProductCache memoizes the featured-products list as a JSON blob.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

func (c *ProductCache) GetFeatured(ctx context.Context) ([]domain.Product, bool, error) {
	raw, err := c.client.Get(ctx, featuredKey).Bytes()
	if err == redis.Nil {
		metrics.FeaturedCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("featured cache get: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		// A corrupt entry is treated as a miss; the caller repopulates it.
		metrics.FeaturedCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}

	metrics.FeaturedCacheTotal.WithLabelValues("hit").Inc()
	return products, true, nil
}

func (c *ProductCache) SetFeatured(ctx context.Context, products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("featured cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, featuredKey, raw, featuredTTL).Err(); err != nil {
		return fmt.Errorf("featured cache set: %w", err)
	}
	return nil
}
