package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-api/internal/config"
	"travel-api/internal/logger"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

type CacheService interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
}

type RedisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(cfg *config.CacheConfig) (*RedisCacheService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCacheService{client: client}, nil
}

func (c *RedisCacheService) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

// Set stores value JSON-encoded.
func (c *RedisCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return c.client.Set(ctx, key, jsonData, expiration).Err()
}

func (c *RedisCacheService) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *RedisCacheService) DeleteByPattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *RedisCacheService) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCacheService) Close() error {
	return c.client.Close()
}

// NopCacheService is used when Redis is disabled. Every Get misses.
type NopCacheService struct{}

func (NopCacheService) Get(context.Context, string) (string, error) { return "", ErrCacheMiss }
func (NopCacheService) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (NopCacheService) Delete(context.Context, string) error          { return nil }
func (NopCacheService) DeleteByPattern(context.Context, string) error { return nil }
func (NopCacheService) Ping(context.Context) error                    { return nil }

func buildCacheKey(prefix string, parts ...interface{}) string {
	strs := make([]string, 0, len(parts)+1)
	strs = append(strs, prefix)
	for _, p := range parts {
		strs = append(strs, fmt.Sprint(p))
	}
	return strings.Join(strs, ":")
}

// cacheLookup decodes a cached value into dest and reports whether it hit.
func cacheLookup(ctx context.Context, cache CacheService, key string, dest interface{}) bool {
	raw, err := cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			logger.Logger.WithError(err).WithField("key", key).Warn("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.Logger.WithError(err).WithField("key", key).Warn("discarding undecodable cache entry")
		return false
	}
	return true
}

func cacheStore(ctx context.Context, cache CacheService, key string, value interface{}, ttl time.Duration) {
	if err := cache.Set(ctx, key, value, ttl); err != nil {
		logger.Logger.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}

// cacheInvalidate drops every key under the given prefixes.
func cacheInvalidate(ctx context.Context, cache CacheService, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := cache.DeleteByPattern(ctx, prefix+":*"); err != nil {
			logger.Logger.WithFields(logrus.Fields{
				"prefix": prefix,
				"error":  err.Error(),
			}).Error("cache invalidation failed")
		}
	}
}

// cachedPage is the cache representation of one page of a list query.
type cachedPage[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}
