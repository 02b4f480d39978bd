package memcache

import (
	"sync"

	"github.com/google/uuid"
)

// PermissionCache memoizes resolved permission sets per user for the life
// of the process. Entries are never expired automatically; role mutations
// must call Clear explicitly, mirroring the session "loaded" flag semantics.
type PermissionCache struct {
	mu   sync.RWMutex
	data map[uuid.UUID][]string
}

func NewPermissionCache() *PermissionCache {
	return &PermissionCache{
		data: make(map[uuid.UUID][]string),
	}
}

func (c *PermissionCache) Get(userID uuid.UUID) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	perms, ok := c.data[userID]
	return perms, ok
}

func (c *PermissionCache) Set(userID uuid.UUID, perms []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[userID] = perms
}

func (c *PermissionCache) Clear(userID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, userID)
}
