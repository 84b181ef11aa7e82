package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trustscore/internal/domain"
)

const reportKeyPrefix = "trustscore:report:"

// ReportCache keeps the latest assessment per trust with TTL eviction.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

// Get returns found=false on a miss.
func (c *ReportCache) Get(ctx context.Context, trustID string) (domain.Assessment, bool, error) {
	data, err := c.client.Get(ctx, reportKey(trustID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Assessment{}, false, nil
		}
		return domain.Assessment{}, false, fmt.Errorf("find report cache: %w", err)
	}
	var a domain.Assessment
	if err := json.Unmarshal(data, &a); err != nil {
		return domain.Assessment{}, false, fmt.Errorf("decode report cache: %w", err)
	}
	return a, true, nil
}

func (c *ReportCache) Set(ctx context.Context, a domain.Assessment) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode report cache: %w", err)
	}
	if err := c.client.Set(ctx, reportKey(a.TrustID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("save report cache: %w", err)
	}
	return nil
}

func (c *ReportCache) Invalidate(ctx context.Context, trustID string) error {
	if err := c.client.Del(ctx, reportKey(trustID)).Err(); err != nil {
		return fmt.Errorf("invalidate report cache: %w", err)
	}
	return nil
}

func reportKey(trustID string) string {
	return reportKeyPrefix + trustID
}
