package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quillstack/blog-api/internal/core/domain"
)

const (
	postListKey = "posts:all"
	postListTTL = 30 * time.Second
)

// PostCache caches the full post list in Redis. Writes to the posts
// collection invalidate the entry, so a stale read lives at most postListTTL.
type PostCache struct {
	client *redis.Client
}

// NewPostCache creates a PostCache wrapping the given Redis client.
func NewPostCache(client *redis.Client) *PostCache {
	return &PostCache{client: client}
}

// GetAll returns the cached post list and whether the cache was warm.
func (c *PostCache) GetAll(ctx context.Context) ([]domain.Post, bool, error) {
	raw, err := c.client.Get(ctx, postListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var posts []domain.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return posts, true, nil
}

// SetAll stores the post list with the cache TTL.
func (c *PostCache) SetAll(ctx context.Context, posts []domain.Post) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, postListKey, raw, postListTTL).Err()
}

// Invalidate drops the cached list after any post mutation.
func (c *PostCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, postListKey).Err()
}
