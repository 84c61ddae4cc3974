package main

import (
	"sync"
	"time"
)

// reportCache provides thread-safe caching of optimization reports and
// their pre-rendered grid visualizations, keyed by facility slug, with
// expiration. Reports are immutable by contract, so entries are shared
// rather than copied.
type reportCache struct {
	mu      sync.RWMutex
	data    map[string]cachedReport
	timeout time.Duration
}

// cachedReport holds one cached report, its rendered grid (if any) and the
// timestamp used for expiration tracking
type cachedReport struct {
	report    *OptimizationReport
	grid      string
	timestamp time.Time
}

// newReportCache creates an empty cache with the given entry lifetime
func newReportCache(timeout time.Duration) *reportCache {
	return &reportCache{
		data:    make(map[string]cachedReport),
		timeout: timeout,
	}
}

// get retrieves a cached report if it exists and hasn't expired
func (c *reportCache) get(slug string) (*OptimizationReport, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, exists := c.data[slug]
	if !exists || time.Since(cached.timestamp) >= c.timeout {
		return nil, false
	}
	return cached.report, true
}

// getGrid retrieves a pre-rendered grid if present and fresh
func (c *reportCache) getGrid(slug string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, exists := c.data[slug]
	if !exists || cached.grid == "" || time.Since(cached.timestamp) >= c.timeout {
		return "", false
	}
	return cached.grid, true
}

// set stores a report with the current timestamp, discarding any grid
// rendered for a previous report of the same facility
func (c *reportCache) set(slug string, report *OptimizationReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[slug] = cachedReport{report: report, timestamp: time.Now()}
}

// setGrid attaches a rendered grid to an existing cache entry. A grid for
// a facility that is no longer cached is dropped.
func (c *reportCache) setGrid(slug, grid string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cached, exists := c.data[slug]
	if !exists {
		return
	}
	cached.grid = grid
	c.data[slug] = cached
}

// clear removes the cached entry for a specific facility
func (c *reportCache) clear(slug string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, slug)
}

// clearAll removes all cached entries (complete cache flush)
func (c *reportCache) clearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]cachedReport)
}
