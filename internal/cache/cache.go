package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Config is the memoization policy for fetched API responses: entries are
// served from memory while fresh, evicted after the retention window, and a
// miss is fetched with a bounded number of retries.
type Config struct {
	FreshnessWindow    time.Duration
	RetentionWindow    time.Duration
	MaxRetries         int
	RefetchOnFocus     bool
	RefetchOnReconnect bool
}

// DefaultConfig caches responses for a day, mirroring the daily refresh
// cadence the widgets were designed around.
func DefaultConfig() Config {
	return Config{
		FreshnessWindow:    24 * time.Hour,
		RetentionWindow:    25 * time.Hour,
		MaxRetries:         2,
		RefetchOnFocus:     false,
		RefetchOnReconnect: false,
	}
}

type Cache struct {
	cache   *gocache.Cache
	cfg     Config
	enabled bool
}

func New(cfg Config, enabled bool) *Cache {
	return &Cache{
		cache:   gocache.New(cfg.FreshnessWindow, cfg.RetentionWindow),
		cfg:     cfg,
		enabled: enabled,
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	if !c.enabled {
		return nil, false
	}
	return c.cache.Get(key)
}

func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	if !c.enabled {
		return
	}
	if ttl <= 0 {
		c.cache.SetDefault(key, value)
		return
	}
	c.cache.Set(key, value, ttl)
}

func (c *Cache) Delete(key string) {
	if !c.enabled {
		return
	}
	c.cache.Delete(key)
}

func (c *Cache) Clear() {
	if !c.enabled {
		return
	}
	c.cache.Flush()
}

// Reconnected reports that a source came back after failing. Under the
// refetch-on-reconnect policy every entry is dropped so subsequent fetches
// hit the source again.
func (c *Cache) Reconnected() {
	if c.cfg.RefetchOnReconnect {
		c.Clear()
	}
}

// Fetch returns the cached value for key when fresh, otherwise calls fn with
// up to MaxRetries retries and caches a successful result for ttl (ttl <= 0
// uses the freshness window). Under the refetch-on-focus policy cached
// entries are never served and every call revalidates against the source.
func (c *Cache) Fetch(key string, ttl time.Duration, fn func() (interface{}, error)) (interface{}, error) {
	if !c.cfg.RefetchOnFocus {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
	}

	var v interface{}
	var err error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		v, err = fn()
		if err == nil {
			if attempt > 0 {
				c.Reconnected()
			}
			c.Set(key, v, ttl)
			return v, nil
		}
	}
	return nil, err
}
