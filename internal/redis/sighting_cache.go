package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/domain"
)

// SightingCache holds the active-sightings snapshot the map endpoints read
// from. A miss returns (nil, nil); callers fall back to Postgres.
type SightingCache struct {
	client *goredis.Client
	key    string
}

func NewSightingCache(r *Redis) *SightingCache {
	return &SightingCache{
		client: r.Client,
		key:    "sightings:active",
	}
}

func (c *SightingCache) GetActive(ctx context.Context) ([]domain.Sighting, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var sightings []domain.Sighting
	if err := json.Unmarshal(data, &sightings); err != nil {
		return nil, err
	}

	return sightings, nil
}

func (c *SightingCache) SetActive(ctx context.Context, sightings []domain.Sighting, ttl time.Duration) error {
	b, err := json.Marshal(sightings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
