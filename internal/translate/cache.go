package translate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Translator interface {
	Translate(ctx context.Context, text string, source string, target string) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// Cached serves repeated translations from cache. Cache failures are logged
// and never fail a translation.
type Cached struct {
	next  Translator
	cache Cache
	ttl   time.Duration
}

func NewCached(next Translator, cache Cache, ttl time.Duration) *Cached {
	return &Cached{next: next, cache: cache, ttl: ttl}
}

func (cached *Cached) Translate(ctx context.Context, text string, source string, target string) (string, error) {
	if !needsTranslation(text, source, target) {
		return text, nil
	}

	key := cacheKey(text, source, target)
	if value, ok, err := cached.cache.Get(ctx, key); err != nil {
		log.Printf("translate cache get failed: %v", err)
	} else if ok {
		return value, nil
	}

	translated, err := cached.next.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}
	if err := cached.cache.Set(ctx, key, translated, cached.ttl); err != nil {
		log.Printf("translate cache set failed: %v", err)
	}
	return translated, nil
}

func cacheKey(text string, source string, target string) string {
	digest := sha256.Sum256([]byte(text))
	return "translate:" + source + ":" + target + ":" + hex.EncodeToString(digest[:])
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (cache *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := cache.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (cache *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return cache.client.Set(ctx, key, value, ttl).Err()
}
