// Package cache keeps hot attributions in redis in front of PostgreSQL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GlebRadaev/afftrack/internal/domain"
)

const keyPrefix = "afftrack:attribution:"

type AttributionCache struct {
	client redis.Cmdable
}

func NewAttributionCache(client redis.Cmdable) *AttributionCache {
	return &AttributionCache{client: client}
}

// NewClient connects to redis and checks the connection.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

type entry struct {
	VisitorID   string            `json:"visitor_id"`
	AffiliateID string            `json:"affiliate_id"`
	SubIDs      map[string]string `json:"sub_ids,omitempty"`
	Campaign    string            `json:"campaign,omitempty"`
	SetAt       time.Time         `json:"set_at"`
	ExpiresAt   time.Time         `json:"expires_at"`
}

func key(visitorID string) string {
	return keyPrefix + visitorID
}

// Get returns nil without error on a cache miss.
func (c *AttributionCache) Get(ctx context.Context, visitorID string) (*domain.Attribution, error) {
	raw, err := c.client.Get(ctx, key(visitorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	return &domain.Attribution{
		VisitorID:   e.VisitorID,
		AffiliateID: e.AffiliateID,
		SubIDs:      domain.SubIDs(e.SubIDs),
		Campaign:    e.Campaign,
		SetAt:       e.SetAt,
		ExpiresAt:   e.ExpiresAt,
	}, nil
}

// Set stores the attribution for ttl; a non-positive ttl evicts it instead.
func (c *AttributionCache) Set(ctx context.Context, a *domain.Attribution, ttl time.Duration) error {
	if ttl <= 0 {
		return c.Delete(ctx, a.VisitorID)
	}
	raw, err := Encode(a)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(a.VisitorID), raw, ttl).Err()
}

func (c *AttributionCache) Delete(ctx context.Context, visitorID string) error {
	return c.client.Del(ctx, key(visitorID)).Err()
}

// Encode is the cached representation of an attribution.
func Encode(a *domain.Attribution) (string, error) {
	raw, err := json.Marshal(entry{
		VisitorID:   a.VisitorID,
		AffiliateID: a.AffiliateID,
		SubIDs:      a.SubIDs,
		Campaign:    a.Campaign,
		SetAt:       a.SetAt,
		ExpiresAt:   a.ExpiresAt,
	})
	return string(raw), err
}
