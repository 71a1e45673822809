package users

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

// RoleCache is a read-through cache of role name -> id. Roles are seeded
// once and effectively never change at runtime, so entries live for the
// process lifetime; Invalidate drops everything when they do.
type RoleCache struct {
	db *gorm.DB

	mu     sync.RWMutex
	byName map[string]int64
}

func NewRoleCache(db *gorm.DB) *RoleCache {
	return &RoleCache{db: db, byName: make(map[string]int64)}
}

func (c *RoleCache) IDByName(ctx context.Context, name string) (int64, error) {
	c.mu.RLock()
	id, ok := c.byName[name]
	c.mu.RUnlock()
	if ok {
		return id, nil
	}

	var role Role
	if err := c.db.WithContext(ctx).First(&role, "name = ?", name).Error; err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.byName[name] = role.ID
	c.mu.Unlock()
	return role.ID, nil
}

func (c *RoleCache) Invalidate() {
	c.mu.Lock()
	c.byName = make(map[string]int64)
	c.mu.Unlock()
}
