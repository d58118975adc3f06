// Package names maintains the playerId → display name cache backed by a
// JSON snapshot on disk.
package names

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// UnknownPlayer is the placeholder used when no display name is cached.
const UnknownPlayer = "不明なプレイヤー"

// Cache is a concurrency-safe name mapping. Every update rewrites the whole
// snapshot file; last writer wins on concurrent updates.
type Cache struct {
	mu     sync.RWMutex
	names  map[string]string
	path   string
	logger *log.Logger
}

// NewCache loads the snapshot at path, degrading to an empty cache when the
// file is missing or corrupt. Loading never fails startup.
func NewCache(path string) *Cache {
	c := &Cache{
		names:  make(map[string]string),
		path:   path,
		logger: log.New(log.Writer(), "[names] ", log.LstdFlags),
	}
	c.load()
	return c
}

func (c *Cache) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Printf("failed to read name snapshot: %v", err)
		}
		return
	}

	var names map[string]string
	if err := json.Unmarshal(data, &names); err != nil {
		c.logger.Printf("corrupt name snapshot, starting empty: %v", err)
		return
	}
	c.names = names
}

// Resolve returns the cached display name, or UnknownPlayer when none exists.
func (c *Cache) Resolve(playerID string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if name, ok := c.names[playerID]; ok && name != "" {
		return name
	}
	return UnknownPlayer
}

// Set stores a display name and rewrites the snapshot file.
func (c *Cache) Set(playerID, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.names[playerID] = name
	c.save()
}

// Remove deletes a mapping and rewrites the snapshot file.
func (c *Cache) Remove(playerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.names, playerID)
	c.save()
}

// save must be called with the write lock held.
func (c *Cache) save() {
	data, err := json.MarshalIndent(c.names, "", "  ")
	if err != nil {
		c.logger.Printf("failed to encode name snapshot: %v", err)
		return
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			c.logger.Printf("failed to create snapshot directory: %v", err)
			return
		}
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		c.logger.Printf("failed to write name snapshot: %v", err)
	}
}
