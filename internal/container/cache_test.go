// SPDX-License-Identifier: MPL-2.0

package container

import (
	"testing"

	"crdetect/internal/testutil"
)

func TestCache_LoadEmptySlot(t *testing.T) {
	t.Parallel()

	c := NewCache(WithCacheKey(cacheKeyFor(t)))
	if r, ok := c.Load(); ok {
		t.Errorf("Load() = %s, want no value from an empty slot", r)
	}
}

func TestCache_StoreLoadRoundTrip(t *testing.T) {
	t.Parallel()

	c := NewCache(WithCacheKey(cacheKeyFor(t)))
	c.Store(RuntimePodman)

	r, ok := c.Load()
	if !ok || r != RuntimePodman {
		t.Errorf("Load() = %s, %t; want %s, true", r, ok, RuntimePodman)
	}
}

func TestCache_UnrecognizedValueTreatedAsEmpty(t *testing.T) {
	key := cacheKeyFor(t)
	restore := testutil.MustSetenv(t, key, "lima")
	defer restore()

	c := NewCache(WithCacheKey(key))
	if r, ok := c.Load(); ok {
		t.Errorf("Load() = %s, want no value for an unrecognized tag", r)
	}
}

func TestCache_LastWriteWins(t *testing.T) {
	t.Parallel()

	c := NewCache(WithCacheKey(cacheKeyFor(t)))
	c.Store(RuntimeDocker)
	c.Store(RuntimeUnavailable)

	r, ok := c.Load()
	if !ok || r != RuntimeUnavailable {
		t.Errorf("Load() = %s, %t; want %s, true", r, ok, RuntimeUnavailable)
	}
}

func TestCache_StoredTagParsesCaseInsensitively(t *testing.T) {
	key := cacheKeyFor(t)
	restore := testutil.MustSetenv(t, key, "DOCKER")
	defer restore()

	c := NewCache(WithCacheKey(key))
	r, ok := c.Load()
	if !ok || r != RuntimeDocker {
		t.Errorf("Load() = %s, %t; want %s, true", r, ok, RuntimeDocker)
	}
}
