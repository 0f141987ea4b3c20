package pairing

import (
	"strings"
	"sync"
)

// OrderCache remembers the first display order of each side's dice so
// rerolls update values in place instead of re-sorting.
type OrderCache struct {
	mu     sync.Mutex
	orders map[string][]int
}

// NewOrderCache creates an empty cache
func NewOrderCache() *OrderCache {
	return &OrderCache{
		orders: make(map[string][]int),
	}
}

func cacheKey(sessionID, side string) string {
	return sessionID + "/" + side
}

// Arrange returns the side's dice in display order. The first call for a
// (session, side) sorts and records the order of original indices; later
// calls reuse it and only refresh values. Unrolled pools are not cached.
func (c *OrderCache) Arrange(sessionID, side string, sizes, results []int) []Die {
	dice := Dice(sizes, results)
	if len(results) == 0 {
		return dice
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(sessionID, side)
	if order, ok := c.orders[key]; ok && len(order) == len(dice) {
		arranged := make([]Die, len(order))
		for display, original := range order {
			arranged[display] = dice[original]
		}
		return arranged
	}

	sorted := Sort(dice)
	order := make([]int, len(sorted))
	for display, d := range sorted {
		order[display] = d.OriginalIndex
	}
	c.orders[key] = order
	return sorted
}

// OriginalIndex maps a display position back to the die's pool index, or -1
func (c *OrderCache) OriginalIndex(sessionID, side string, displayIndex int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	order, ok := c.orders[cacheKey(sessionID, side)]
	if !ok || displayIndex < 0 || displayIndex >= len(order) {
		return -1
	}
	return order[displayIndex]
}

// DisplayIndex maps a pool index to where the die is shown, or -1
func (c *OrderCache) DisplayIndex(sessionID, side string, originalIndex int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	for display, original := range c.orders[cacheKey(sessionID, side)] {
		if original == originalIndex {
			return display
		}
	}
	return -1
}

// Forget drops every cached order for the session
func (c *OrderCache) Forget(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := sessionID + "/"
	for key := range c.orders {
		if strings.HasPrefix(key, prefix) {
			delete(c.orders, key)
		}
	}
}
