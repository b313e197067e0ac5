package content

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hopecreatives/officialhope/pkg/catalog"
	"github.com/redis/go-redis/v9"
)

const cacheTTL = 60 * time.Second

// CachedSource keeps content store responses in Redis for a short revalidation
// window so every page view does not hit the store. Cache failures fall
// through to the wrapped source.
type CachedSource struct {
	Source Source
	client *redis.Client
}

func NewCachedSource(source Source, addr, password string, db int) *CachedSource {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &CachedSource{Source: source, client: rdb}
}

func (c *CachedSource) get(ctx context.Context, key string, out any) bool {
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		log.Printf("dropping bad cache entry %s: %v", key, err)
		return false
	}
	return true
}

func (c *CachedSource) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		log.Printf("cache write failed for %s: %v", key, err)
	}
}

func (c *CachedSource) GetProducts(ctx context.Context) ([]catalog.RawProduct, error) {
	var cached []catalog.RawProduct
	if c.get(ctx, "products:all", &cached) {
		return cached, nil
	}
	records, err := c.Source.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, "products:all", records)
	return records, nil
}

func (c *CachedSource) GetProductsByCategory(ctx context.Context, slug string) ([]catalog.RawProduct, error) {
	key := "products:category:" + slug
	var cached []catalog.RawProduct
	if c.get(ctx, key, &cached) {
		return cached, nil
	}
	records, err := c.Source.GetProductsByCategory(ctx, slug)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, records)
	return records, nil
}

func (c *CachedSource) GetProductBySlug(ctx context.Context, slug string) (*catalog.RawProduct, error) {
	key := "products:slug:" + slug
	var cached *catalog.RawProduct
	if c.get(ctx, key, &cached) && cached != nil {
		return cached, nil
	}
	record, err := c.Source.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if record != nil {
		c.set(ctx, key, record)
	}
	return record, nil
}

func (c *CachedSource) Close() error {
	return c.client.Close()
}
