package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dwelloBack/internal/models"
)

// SummaryCache keeps connection summary cards in Redis for the pro profile
// read path. It is a cache, not a source of truth: misses and Redis errors
// fall through to the database.
type SummaryCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSummaryCache(addr, password string, db int, ttl time.Duration) *SummaryCache {
	return &SummaryCache{
		Client: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		TTL:    ttl,
	}
}

func summaryKey(connectionID int) string {
	return fmt.Sprintf("connection:summary:%d", connectionID)
}

func (c *SummaryCache) Get(ctx context.Context, connectionID int) (models.ConnectionSummary, bool) {
	var s models.ConnectionSummary
	if c == nil || c.Client == nil {
		return s, false
	}
	raw, err := c.Client.Get(ctx, summaryKey(connectionID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			// Degrade to the DB on cache trouble.
			return s, false
		}
		return s, false
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, false
	}
	return s, true
}

func (c *SummaryCache) Set(ctx context.Context, s models.ConnectionSummary) {
	if c == nil || c.Client == nil {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	c.Client.Set(ctx, summaryKey(s.ConnectionID), raw, c.TTL)
}

// Invalidate drops the cached card after an approval rewrites the counters.
func (c *SummaryCache) Invalidate(ctx context.Context, connectionID int) {
	if c == nil || c.Client == nil {
		return
	}
	c.Client.Del(ctx, summaryKey(connectionID))
}
