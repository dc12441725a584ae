package scene

import (
	"time"

	"flight-radar.klederson.com/internal/airship"
	"flight-radar.klederson.com/internal/geometry"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// spriteKey is everything a projection depends on.
type spriteKey struct {
	ship   airship.Airship
	grid   geometry.Grid
	params airship.Params
	view   View
}

// SpriteCache memoizes airship projections across frames. A stationary
// airship under an unchanged grid and view projects to the same Sprite, so
// it is looked up instead of rebuilt. Cached sprites are shared and must be
// treated as read-only. A nil *SpriteCache caches nothing.
type SpriteCache struct {
	lru *expirable.LRU[spriteKey, Sprite]
}

// NewSpriteCache holds up to size projections for at most ttl each.
func NewSpriteCache(size int, ttl time.Duration) *SpriteCache {
	return &SpriteCache{lru: expirable.NewLRU[spriteKey, Sprite](max(size, 1), nil, ttl)}
}

func (c *SpriteCache) project(f Frame, a airship.Airship) (Sprite, error) {
	if c == nil {
		return project(f, a)
	}
	k := spriteKey{ship: a, grid: f.Grid, params: f.Params, view: f.View}
	if s, ok := c.lru.Get(k); ok {
		return s, nil
	}
	s, err := project(f, a)
	if err != nil {
		return Sprite{}, err
	}
	c.lru.Add(k, s)
	return s, nil
}

// Len returns the number of cached projections.
func (c *SpriteCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
