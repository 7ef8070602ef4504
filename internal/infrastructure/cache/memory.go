package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryLocker is an in-process lock table with expiration. It only guards
// a single server instance; use RedisLocker when several instances share
// the upload directory.
type MemoryLocker struct {
	mu        sync.Mutex
	ttl       time.Duration
	items     map[string]*memoryItem
	now       func() time.Time
	lastToken uint64
}

type memoryItem struct {
	token      uint64
	expireTime time.Time
}

// NewMemoryLocker creates a lock table whose entries expire after ttl
func NewMemoryLocker(ttl time.Duration) *MemoryLocker {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &MemoryLocker{
		ttl:   ttl,
		items: make(map[string]*memoryItem),
		now:   time.Now,
	}
}

// TryLock takes key if it is free or its previous holder expired
func (ml *MemoryLocker) TryLock(_ context.Context, key string) (func(), bool, error) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	now := ml.now()
	if item, exists := ml.items[key]; exists && now.Before(item.expireTime) {
		return nil, false, nil
	}

	ml.lastToken++
	token := ml.lastToken

	ml.items[key] = &memoryItem{token: token, expireTime: now.Add(ml.ttl)}

	var once sync.Once
	release := func() {
		once.Do(func() {
			ml.mu.Lock()
			defer ml.mu.Unlock()
			// an expired lock may have been taken over by someone else
			if item, ok := ml.items[key]; ok && item.token == token {
				delete(ml.items, key)
			}
		})
	}
	return release, true, nil
}

// Held reports whether key is currently locked
func (ml *MemoryLocker) Held(key string) bool {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	item, exists := ml.items[key]
	return exists && ml.now().Before(item.expireTime)
}

// cleanupExpired removes expired entries
func (ml *MemoryLocker) cleanupExpired() {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	now := ml.now()
	for key, item := range ml.items {
		if now.After(item.expireTime) {
			delete(ml.items, key)
		}
	}
}

// RunCleanup periodically removes expired entries until ctx is done
func (ml *MemoryLocker) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ml.cleanupExpired()
		}
	}
}
