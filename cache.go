package strseg

import (
	"sync"

	"github.com/coregx/strseg/internal/engine"
)

type cacheKey struct {
	pattern  string
	flags    Flags
	mode     engine.Mode
	captures bool
}

// patternCache memoizes compiled engines per distinct pattern, flags and
// engine mode. When full, it is flushed before the next insertion.
type patternCache struct {
	mu      sync.RWMutex
	size    int
	engines map[cacheKey]engine.Engine
}

func newPatternCache(size int) *patternCache {
	return &patternCache{
		size:    size,
		engines: make(map[cacheKey]engine.Engine, min(size, 64)),
	}
}

func (c *patternCache) get(key cacheKey) (engine.Engine, bool) {
	if c.size == 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.engines[key]
	return e, ok
}

func (c *patternCache) put(key cacheKey, e engine.Engine) {
	if c.size == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.engines) >= c.size {
		clear(c.engines)
	}
	c.engines[key] = e
}

func (c *patternCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.engines)
}
