package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// defaultOperationTimeout is the timeout for individual Redis operations
	defaultOperationTimeout = 5 * time.Second

	renderTTL  = 1 * time.Hour
	datasetTTL = 5 * time.Minute
)

type Cache struct {
	client  *redis.Client
	enabled bool
}

func NewCache(addr string, enable bool) (*Cache, error) {
	if !enable {
		return &Cache{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{
		client:  client,
		enabled: true,
	}, nil
}

func (c *Cache) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultOperationTimeout)
}

func (c *Cache) Set(key string, value interface{}, expiration time.Duration) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, jsonData, expiration).Err()
}

func (c *Cache) Get(key string, dest interface{}) error {
	if !c.enabled {
		return fmt.Errorf("cache disabled")
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("key not found")
	} else if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Cache) Delete(key string) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	return c.client.Del(ctx, key).Err()
}

func (c *Cache) DeletePattern(pattern string) error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) Exists(key string) (bool, error) {
	if !c.enabled {
		return false, nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	val, err := c.client.Exists(ctx, key).Result()
	return val > 0, err
}

func (c *Cache) FlushAll() error {
	if !c.enabled {
		return nil
	}

	ctx, cancel := c.operationContext()
	defer cancel()

	return c.client.FlushAll(ctx).Err()
}

func (c *Cache) Close() error {
	if !c.enabled {
		return nil
	}
	return c.client.Close()
}

// Rendered-markup cache. Keys combine the block type with a content hash so
// re-authored blocks never serve stale markup.

func (c *Cache) CacheRender(blockType, contentHash string, render interface{}) error {
	return c.Set(fmt.Sprintf("render:%s:%s", blockType, contentHash), render, renderTTL)
}

func (c *Cache) GetCachedRender(blockType, contentHash string, dest interface{}) error {
	return c.Get(fmt.Sprintf("render:%s:%s", blockType, contentHash), dest)
}

func (c *Cache) InvalidateRenders(blockType string) error {
	return c.DeletePattern(fmt.Sprintf("render:%s:*", blockType))
}

func (c *Cache) InvalidateAllRenders() error {
	return c.DeletePattern("render:*")
}

// Remote-dataset cache (specs and product lookups).

func (c *Cache) CacheDataset(name string, data interface{}) error {
	return c.Set(fmt.Sprintf("dataset:%s", name), data, datasetTTL)
}

func (c *Cache) GetCachedDataset(name string, dest interface{}) error {
	return c.Get(fmt.Sprintf("dataset:%s", name), dest)
}

func (c *Cache) InvalidateDatasets() error {
	return c.DeletePattern("dataset:*")
}

// Stored-page cache.

func (c *Cache) CachePage(pageID uint, page interface{}) error {
	return c.Set(fmt.Sprintf("page:%d", pageID), page, renderTTL)
}

func (c *Cache) GetCachedPage(pageID uint, dest interface{}) error {
	return c.Get(fmt.Sprintf("page:%d", pageID), dest)
}

func (c *Cache) InvalidatePage(pageID uint) error {
	if err := c.Delete(fmt.Sprintf("page:%d", pageID)); err != nil {
		return err
	}
	return c.DeletePattern("page:slug:*")
}

func (c *Cache) InvalidatePagesCache() error {
	return c.DeletePattern("page*")
}
