// Package cache holds computed hue values keyed by world coordinates.
package cache

import (
	"sync"

	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/zerr"
)

// Cache is a sparse world-x → world-y → value store with an epoch counter.
//
// Every write names the epoch it was computed in. Invalidate clears all
// values and starts a new epoch, so a pass that started before the
// invalidation can no longer write.
type Cache struct {
	mu    sync.RWMutex
	cells map[int]map[int]float64
	epoch uint64
	count int
}

// New returns an empty cache in epoch 0.
func New() *Cache {
	return &Cache{cells: make(map[int]map[int]float64)}
}

// Epoch returns the current epoch.
func (c *Cache) Epoch() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch
}

// Len returns the number of cached cells.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.count
}

// Empty reports whether no cell is cached.
func (c *Cache) Empty() bool {
	return c.Len() == 0
}

// Lookup returns the value cached at (x, y).
func (c *Cache) Lookup(x, y int) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.cells[x][y]
	return v, ok
}

// Column copies the cached rows y0..y0+len(out)-1 of world column x into out
// and returns how many of them were present. Missing rows are left untouched.
func (c *Cache) Column(x, y0 int, out []float64) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	col := c.cells[x]
	if col == nil {
		return 0
	}
	hits := 0
	for i := range out {
		if v, ok := col[y0+i]; ok {
			out[i] = v
			hits++
		}
	}
	return hits
}

// Store writes one cell computed in epoch.
func (c *Cache) Store(epoch uint64, x, y int, v float64) error {
	return c.StoreColumn(epoch, x, map[int]float64{y: v})
}

// StoreColumn writes the given rows of world column x in one step.
// Readers observe either none or all of them.
func (c *Cache) StoreColumn(epoch uint64, x int, rows map[int]float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkEpoch(epoch); err != nil {
		return err
	}
	c.merge(x, rows)
	return nil
}

// Replace writes a whole set of columns computed in epoch.
func (c *Cache) Replace(epoch uint64, cells map[int]map[int]float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkEpoch(epoch); err != nil {
		return err
	}
	for x, rows := range cells {
		c.merge(x, rows)
	}
	return nil
}

// Invalidate drops every cell and returns the new epoch.
func (c *Cache) Invalidate() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.cells)
	c.count = 0
	c.epoch++
	return c.epoch
}

// ExportWindow returns a copy of the cached cells inside the size×size
// window whose top-left world cell is (x0, y0).
func (c *Cache) ExportWindow(x0, y0, size int) map[int]map[int]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[int]map[int]float64, size)
	for x := x0; x < x0+size; x++ {
		col := c.cells[x]
		if col == nil {
			continue
		}
		rows := make(map[int]float64, size)
		for y := y0; y < y0+size; y++ {
			if v, ok := col[y]; ok {
				rows[y] = v
			}
		}
		if len(rows) > 0 {
			out[x] = rows
		}
	}
	return out
}

func (c *Cache) checkEpoch(epoch uint64) error {
	if epoch == c.epoch {
		return nil
	}
	err := zerr.With(zerr.Wrap(domain.ErrStalePass, "cache was invalidated"), "pass_epoch", epoch)
	return zerr.With(err, "cache_epoch", c.epoch)
}

func (c *Cache) merge(x int, rows map[int]float64) {
	if len(rows) == 0 {
		return
	}
	col := c.cells[x]
	if col == nil {
		col = make(map[int]float64, len(rows))
		c.cells[x] = col
	}
	for y, v := range rows {
		if _, ok := col[y]; !ok {
			c.count++
		}
		col[y] = v
	}
}
