package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/sulthanularief148/RoyalTextiles/models"
)

const (
	productListKey = "pos:products"
	productListTTL = 10 * time.Minute
)

// ProductCache caches the full product list in Redis. It is optional:
// callers hold a nil *ProductCache when REDIS_ADDR is not set.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache connects to Redis and verifies the connection.
func NewProductCache(addr string) (*ProductCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("✅ Connected to Redis")
	return &ProductCache{client: client}, nil
}

func (c *ProductCache) GetProducts(ctx context.Context) ([]models.Product, error) {
	data, err := c.client.Get(ctx, productListKey).Result()
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *ProductCache) SetProducts(ctx context.Context, products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productListKey, data, productListTTL).Err()
}

// Invalidate drops the cached list. Call it after any write that can
// change a product, including the stock decrements of a checkout.
func (c *ProductCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, productListKey).Err()
}

func (c *ProductCache) Close() {
	if c != nil && c.client != nil {
		c.client.Close()
	}
}
