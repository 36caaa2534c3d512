package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryClaims é usado quando não há redis: vale só dentro do processo.
type MemoryClaims struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	claims map[uint]time.Time
}

func NewMemoryClaims(ttl time.Duration) *MemoryClaims {
	return &MemoryClaims{
		ttl:    ttl,
		now:    time.Now,
		claims: make(map[uint]time.Time),
	}
}

func (c *MemoryClaims) Claim(_ context.Context, bookingID uint) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if exp, ok := c.claims[bookingID]; ok && now.Before(exp) {
		return false, nil
	}
	c.claims[bookingID] = now.Add(c.ttl)
	return true, nil
}

func (c *MemoryClaims) Release(_ context.Context, bookingID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.claims, bookingID)
	return nil
}
