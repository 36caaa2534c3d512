package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

// Cmdable é o subconjunto de *redis.Client usado pelos claims.
type Cmdable interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ReminderClaims garante que só um worker envia o lembrete de cada booking.
type ReminderClaims struct {
	rdb Cmdable
	ttl time.Duration
}

func NewReminderClaims(rdb Cmdable, ttl time.Duration) *ReminderClaims {
	return &ReminderClaims{rdb: rdb, ttl: ttl}
}

func reminderKey(bookingID uint) string {
	return fmt.Sprintf("reminder:booking:%d", bookingID)
}

func (c *ReminderClaims) Claim(ctx context.Context, bookingID uint) (bool, error) {
	ok, err := c.rdb.SetNX(ctx, reminderKey(bookingID), 1, c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim reminder %d: %w", bookingID, err)
	}
	return ok, nil
}

func (c *ReminderClaims) Release(ctx context.Context, bookingID uint) error {
	if err := c.rdb.Del(ctx, reminderKey(bookingID)).Err(); err != nil {
		return fmt.Errorf("release reminder %d: %w", bookingID, err)
	}
	return nil
}
