package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/board-service/internal/domain"
)

const (
	postKeyPrefix = "board:post:"
	listKeyPrefix = "board:posts:list:"
)

// PostCache is a best-effort read-through cache for post read paths.
// Misses and redis failures both fall back to the store; the cache never
// decides correctness.
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewPostCache builds the cache. A nil client disables caching entirely.
func NewPostCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *PostCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &PostCache{client: client, ttl: ttl, logger: logger}
}

// GetPost returns a cached post, or nil on miss.
func (c *PostCache) GetPost(ctx context.Context, id int64) *domain.Post {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, postKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("post cache get failed", zap.Int64("post_id", id), zap.Error(err))
		}
		return nil
	}
	var post domain.Post
	if err := json.Unmarshal(raw, &post); err != nil {
		return nil
	}
	return &post
}

// SetPost stores a post under its id key.
func (c *PostCache) SetPost(ctx context.Context, post *domain.Post) {
	if c == nil || c.client == nil || post == nil {
		return
	}
	raw, err := json.Marshal(post)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, postKey(post.ID), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("post cache set failed", zap.Int64("post_id", post.ID), zap.Error(err))
	}
}

// GetList returns a cached page of posts, or nil on miss.
func (c *PostCache) GetList(ctx context.Context, limit, offset int) []domain.Post {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, listKey(limit, offset)).Bytes()
	if err != nil {
		return nil
	}
	var posts []domain.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil
	}
	return posts
}

// SetList stores a page of posts.
func (c *PostCache) SetList(ctx context.Context, limit, offset int, posts []domain.Post) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(posts)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, listKey(limit, offset), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("post cache set failed", zap.Error(err))
	}
}

// InvalidatePost drops the single-post entry and every list page. List keys
// are swept by pattern because any mutation can reorder or shrink pages.
func (c *PostCache) InvalidatePost(ctx context.Context, id int64) {
	if c == nil || c.client == nil {
		return
	}
	keys := []string{postKey(id)}
	iter := c.client.Scan(ctx, 0, listKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("post cache invalidation failed", zap.Int64("post_id", id), zap.Error(err))
	}
}

func postKey(id int64) string {
	return fmt.Sprintf("%s%d", postKeyPrefix, id)
}

func listKey(limit, offset int) string {
	return fmt.Sprintf("%s%d:%d", listKeyPrefix, limit, offset)
}
