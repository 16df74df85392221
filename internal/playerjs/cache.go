package playerjs

import "sync"

// AssetCache memoizes parsed player assets by script path. Concurrent
// first-time initializers may both fetch, but the cell converges: the
// first stored asset wins and every later lookup returns it.
type AssetCache struct {
	mu     sync.RWMutex
	assets map[string]*Asset
}

func NewAssetCache() *AssetCache {
	return &AssetCache{assets: make(map[string]*Asset)}
}

func (c *AssetCache) Get(path string) (*Asset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.assets[path]
	return a, ok
}

// Put stores the asset unless one is already present and returns the
// asset all callers should use from now on.
func (c *AssetCache) Put(path string, asset *Asset) *Asset {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.assets[path]; ok {
		return existing
	}
	c.assets[path] = asset
	return asset
}
