// Package dashboard keeps the dashboard's view of rooms in sync with the API
// and turns it into something a front end can draw.
package dashboard

import (
	"sync"

	"github.com/zaqqye/restroom_monitor/internal/models"
)

// Cache holds the rooms from the last successful fetch, in server order.
// Only a Refresher writes it, and always by wholesale replacement.
type Cache struct {
	mu    sync.RWMutex
	rooms []models.Room
}

func NewCache() *Cache {
	return &Cache{}
}

// Snapshot returns a deep copy; it is empty, never nil, before the first fetch.
func (c *Cache) Snapshot() []models.Room {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Room, len(c.rooms))
	for i, r := range c.rooms {
		out[i] = r.Clone()
	}
	return out
}

// Lookup finds a room by id in the current snapshot.
func (c *Cache) Lookup(id string) (models.Room, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.rooms {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return models.Room{}, false
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rooms)
}

func (c *Cache) replace(rooms []models.Room) {
	next := make([]models.Room, len(rooms))
	for i, r := range rooms {
		next[i] = r.Clone()
	}
	c.mu.Lock()
	c.rooms = next
	c.mu.Unlock()
}
