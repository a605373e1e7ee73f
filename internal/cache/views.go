package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/fsw-barber/booking-api/internal/domain/booking"
)

const keyPrefix = "view:"

// Views keeps rendered listing payloads in redis so the hot pages
// (home, a customer's bookings) skip the database until a booking
// marks them stale.
type Views struct {
	client *redis.Client
	ttl    time.Duration
}

func NewViews(addr, password string, db int) *Views {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &Views{
		client: rdb,
		ttl:    5 * time.Minute,
	}
}

func key(path string) string {
	return keyPrefix + path
}

// Get returns the cached payload for a view path, or nil on a miss.
func (v *Views) Get(ctx context.Context, path string) ([]byte, error) {
	data, err := v.client.Get(ctx, key(path)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (v *Views) Put(ctx context.Context, path string, payload []byte) error {
	return v.client.Set(ctx, key(path), payload, v.ttl).Err()
}

func (v *Views) Invalidate(ctx context.Context, path string) error {
	return v.client.Del(ctx, key(path)).Err()
}

func (v *Views) Ping(ctx context.Context) error {
	return v.client.Ping(ctx).Err()
}

// Compile-time check
var _ domain.ViewCache = (*Views)(nil)
