package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cleaning-marketplace/internal/domain/repository"
)

// CacheRepository - in-memory кеш без вытеснения, TTL учитывается лениво
type CacheRepository struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

func NewCacheRepository() *CacheRepository {
	return &CacheRepository{
		entries: make(map[string]cacheEntry),
	}
}

var _ repository.CacheRepository = (*CacheRepository)(nil)

func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[key]
	if !exists || (!entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)) {
		return nil, nil // cache miss
	}
	return entry.value, nil
}

func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := cacheEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	r.entries[key] = entry
	return nil
}

func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, key)
	return nil
}

func (r *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return val != nil, nil
}
