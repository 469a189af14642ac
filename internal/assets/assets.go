// Package assets loads and caches height-map images shared between meshes.
package assets

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Faultbox/meshgen/pkg/heightfield"
)

// LoadFunc decodes a height map file. heightfield.Load is the production loader.
type LoadFunc func(path string, width, height, scale float64) (*heightfield.Image, error)

// Manager hands out decoded height maps. Concurrent requests for the same
// file and extent share one decode.
type Manager struct {
	load  LoadFunc
	cache *Cache
	group singleflight.Group
}

// NewManager creates a manager backed by heightfield.Load.
func NewManager() *Manager {
	return NewManagerWithLoader(heightfield.Load)
}

// NewManagerWithLoader creates a manager with a custom loader.
func NewManagerWithLoader(load LoadFunc) *Manager {
	return &Manager{
		load:  load,
		cache: NewCache(),
	}
}

// HeightMap returns the height map for path stretched over width x height.
func (m *Manager) HeightMap(path string, width, height, scale float64) (*heightfield.Image, error) {
	key := fmt.Sprintf("%s|%g|%g|%g", path, width, height, scale)
	if img, ok := m.cache.Get(key); ok {
		return img, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		img, err := m.load(path, width, height, scale)
		if err != nil {
			return nil, fmt.Errorf("loading height map %s: %w", path, err)
		}
		m.cache.Set(key, img)
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*heightfield.Image), nil
}

// Stats returns cache hit and miss counts.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops every cached height map.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is an in-memory map of decoded height maps.
type Cache struct {
	data map[string]*heightfield.Image
	mu   sync.Mutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*heightfield.Image),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*heightfield.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	img, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return img, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, img *heightfield.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = img
}

// Clear clears the cache and its statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*heightfield.Image)
	c.hits = 0
	c.misses = 0
}

// Len returns the number of cached height maps.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
