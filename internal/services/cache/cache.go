// Package cache stores successful language-model answers so repeated
// history-free questions skip the provider round trip. Deterministic
// pipeline stages (shortcut, FAQ) are never cached since they are cheaper
// than the lookup.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Tasheela99/chat-bot/internal/config"
	"github.com/go-redis/redis/v8"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// Service defines cache operations
type Service interface {
	Get(ctx context.Context, topic, lang, question string) (string, bool)
	Set(ctx context.Context, topic, lang, question, answer string) error
	Clear(ctx context.Context) error
}

// NewService selects a backend by config: "redis" or "memory". A disabled
// cache returns a no-op implementation so callers never branch.
func NewService(cfg *config.CacheConfig, logger *logrus.Logger) (Service, error) {
	if !cfg.Enabled {
		return &noopCache{}, nil
	}

	switch cfg.Type {
	case "redis":
		return newRedisCache(cfg, logger)
	case "memory", "":
		return newMemoryCache(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}

func cacheKey(topic, lang, question string) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%s", topic, lang, question)))
	return "answer:" + hex.EncodeToString(hash[:])
}

type noopCache struct{}

func (n *noopCache) Get(ctx context.Context, topic, lang, question string) (string, bool) {
	return "", false
}
func (n *noopCache) Set(ctx context.Context, topic, lang, question, answer string) error {
	return nil
}
func (n *noopCache) Clear(ctx context.Context) error { return nil }

// memoryCache keeps answers in-process.
type memoryCache struct {
	cache   *gocache.Cache
	maxSize int
	logger  *logrus.Logger
}

func newMemoryCache(cfg *config.CacheConfig, logger *logrus.Logger) *memoryCache {
	return &memoryCache{
		cache:   gocache.New(cfg.TTL, cfg.TTL*2),
		maxSize: cfg.MaxSize,
		logger:  logger,
	}
}

func (c *memoryCache) Get(ctx context.Context, topic, lang, question string) (string, bool) {
	if val, found := c.cache.Get(cacheKey(topic, lang, question)); found {
		c.logger.WithFields(logrus.Fields{
			"topic":    topic,
			"language": lang,
		}).Debug("Cache hit")
		return val.(string), true
	}
	return "", false
}

func (c *memoryCache) Set(ctx context.Context, topic, lang, question, answer string) error {
	if c.maxSize > 0 && c.cache.ItemCount() >= c.maxSize {
		c.logger.Warn("Cache size limit reached, dropping expired entries")
		c.cache.DeleteExpired()
	}
	c.cache.SetDefault(cacheKey(topic, lang, question), answer)
	return nil
}

func (c *memoryCache) Clear(ctx context.Context) error {
	c.cache.Flush()
	return nil
}

// redisCache shares answers across instances.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

func newRedisCache(cfg *config.CacheConfig, logger *logrus.Logger) (*redisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &redisCache{
		client: client,
		ttl:    cfg.TTL,
		logger: logger,
	}, nil
}

func (c *redisCache) Get(ctx context.Context, topic, lang, question string) (string, bool) {
	val, err := c.client.Get(ctx, cacheKey(topic, lang, question)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.logger.WithError(err).Warn("Cache lookup failed")
		return "", false
	}
	return val, true
}

func (c *redisCache) Set(ctx context.Context, topic, lang, question, answer string) error {
	return c.client.Set(ctx, cacheKey(topic, lang, question), answer, c.ttl).Err()
}

func (c *redisCache) Clear(ctx context.Context) error {
	return c.client.FlushDB(ctx).Err()
}
