// SPDX-License-Identifier: MPL-2.0

package container

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
)

// checkTestcontainersAvailable safely checks whether a container provider
// is reachable. The provider lookup can panic on some hosts, so it is more
// robust to gate on our own detection first and use this as confirmation.
func checkTestcontainersAvailable() (available bool) {
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()
	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		return false
	}
	defer provider.Close()
	return true
}

// TestDetection_Integration exercises detection and rootless inspection
// against the real host environment. It requires Docker or Podman.
func TestDetection_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	detector := NewDetector(WithCache(NewCache(WithCacheKey(cacheKeyFor(t)))))
	r := detector.DetectOptional(ctx)
	if !r.Available() {
		t.Skip("skipping: no container engine available on this host")
	}

	if r == RuntimeDocker && !checkTestcontainersAvailable() {
		t.Skip("skipping: testcontainers docker provider not available")
	}

	exe, err := r.ExecutableName()
	if err != nil {
		t.Fatalf("ExecutableName() on a resolved runtime: %v", err)
	}
	if exe != "docker" && exe != "podman" {
		t.Errorf("ExecutableName() = %q, want docker or podman", exe)
	}

	inspector := NewInspector()
	first, err := inspector.Rootless(ctx, r)
	if err != nil {
		t.Fatalf("Rootless() on a resolved runtime: %v", err)
	}
	second, err := inspector.Rootless(ctx, r)
	if err != nil {
		t.Fatalf("Rootless() second call: %v", err)
	}
	if first != second {
		t.Errorf("Rootless() not stable: %t then %t", first, second)
	}
}
