package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
)

type cacheEntry struct {
	user      *users.User
	expiresAt time.Time
}

// InMemoryCache implements users.UserCache with a mutex guarded map.
// Expired entries are removed on access.
type InMemoryCache struct {
	mu   sync.RWMutex
	data map[int64]cacheEntry
	ttl  time.Duration
	now  func() time.Time
}

// NewInMemoryCache creates a new in-memory cache whose entries live for ttl.
func NewInMemoryCache(ttl time.Duration) *InMemoryCache {
	return &InMemoryCache{
		data: make(map[int64]cacheEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get returns a copy of the cached user, or ok=false on miss or expiry.
func (c *InMemoryCache) Get(ctx context.Context, userID int64) (*users.User, bool, error) {
	if ctx.Err() != nil {
		return nil, false, ctx.Err()
	}

	c.mu.RLock()
	entry, ok := c.data[userID]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.data, userID)
		c.mu.Unlock()
		return nil, false, nil
	}

	return entry.user.Clone(), true, nil
}

// Set stores a copy of user without its password.
func (c *InMemoryCache) Set(ctx context.Context, user *users.User) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[user.ID] = cacheEntry{
		user:      user.WithoutPassword(),
		expiresAt: c.now().Add(c.ttl),
	}
	return nil
}

// Delete evicts the user.
func (c *InMemoryCache) Delete(ctx context.Context, userID int64) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, userID)
	return nil
}

// Len returns the number of entries, expired ones included.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
