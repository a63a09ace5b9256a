// SPDX-License-Identifier: MPL-2.0

package container

import (
	"log/slog"
	"os"
)

// runtimeCacheKey is the fixed name of the process-wide slot that remembers
// the resolved runtime. The slot is an environment variable rather than a
// package-level variable so the value stays visible across independently
// initialized copies of this package (plugins, re-exec'd test binaries)
// within the same process tree, and repeated detection never re-spawns
// probe processes.
const runtimeCacheKey = "CRDETECT_RESOLVED_RUNTIME"

type (
	// CacheOption configures a Cache.
	CacheOption func(*Cache)

	// Cache is the process-wide detection cache. It holds at most one
	// Runtime tag and is written once per process lifetime under normal
	// operation.
	Cache struct {
		key string
	}
)

// WithCacheKey overrides the slot name. Intended for tests that need
// isolated slots within one process.
func WithCacheKey(key string) CacheOption {
	return func(c *Cache) {
		c.key = key
	}
}

// NewCache creates a Cache bound to the fixed process-wide slot.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{key: runtimeCacheKey}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the cached runtime. The second return value is false when
// the slot is empty or holds an unrecognized tag; an unrecognized tag is
// logged and otherwise treated as "no value".
func (c *Cache) Load() (Runtime, bool) {
	raw, ok := os.LookupEnv(c.key)
	if !ok || raw == "" {
		return "", false
	}
	r, ok := ParseRuntime(raw)
	if !ok {
		slog.Warn("ignoring unrecognized cached container runtime", "key", c.key, "value", raw)
		return "", false
	}
	return r, true
}

// Store records the resolved runtime. Last write wins; concurrent writers
// converge on the same value because detection is deterministic for a
// fixed environment.
func (c *Cache) Store(r Runtime) {
	if err := os.Setenv(c.key, string(r)); err != nil {
		slog.Warn("failed to store container runtime in process-wide cache", "key", c.key, "error", err)
	}
}
