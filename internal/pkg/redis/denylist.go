package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistKeyPrefix = "token:denylist:"

// Denylist stores revoked token identifiers. Entries expire on their
// own once the token they belong to could no longer verify anyway.
type Denylist struct {
	client *redis.Client
}

func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{
		client: client,
	}
}

func (d *Denylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	err := d.client.Set(ctx, denylistKeyPrefix+jti, "1", ttl).Err()
	if err != nil {
		return fmt.Errorf("denylist revoke: %w", err)
	}
	return nil
}

func (d *Denylist) Revoked(ctx context.Context, jti string) (bool, error) {
	err := d.client.Get(ctx, denylistKeyPrefix+jti).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("denylist lookup: %w", err)
	}
	return true, nil
}
