package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/shopchat/backend/internal/domain"
)

// cacheItem represents a single cached candidate list with expiration
type cacheItem struct {
	Data       []byte
	Expiration time.Time
}

// MemoryCache is a thread-safe in-memory candidate cache with TTL support.
// Entries are stored as JSON so cached lists are value copies; callers can
// mutate what they get back without poisoning the cache.
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]cacheItem),
	}

	// Start cleanup goroutine to remove expired entries every 10 minutes
	go cache.cleanupExpired()

	return cache
}

// Get retrieves a cached candidate list
func (c *MemoryCache) Get(ctx context.Context, key string) ([]domain.Candidate, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	// Check if expired
	if time.Now().After(item.Expiration) {
		return nil, domain.ErrCacheMiss
	}

	var candidates []domain.Candidate
	if err := json.Unmarshal(item.Data, &candidates); err != nil {
		return nil, domain.ErrCacheMiss
	}

	return candidates, nil
}

// Set stores a candidate list with TTL
func (c *MemoryCache) Set(ctx context.Context, key string, candidates []domain.Candidate, ttl time.Duration) error {
	jsonData, err := json.Marshal(candidates)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheItem{
		Data:       jsonData,
		Expiration: time.Now().Add(ttl),
	}

	return nil
}

// cleanupExpired removes expired entries from the cache periodically
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.Expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of items in the cache (for debugging/monitoring)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheItem)
}
