// SPDX-License-Identifier: MPL-2.0

package container

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"crdetect/internal/issue"
)

const (
	// dockerBanner appears anywhere in `docker --version` output of a real
	// Docker CLI.
	dockerBanner = "Docker version"

	// podmanBanner and podmanBannerWindows are the version banner prefixes
	// printed by Podman, including when the docker command is a shim that
	// actually invokes Podman.
	podmanBanner        = "podman version"
	podmanBannerWindows = "podman.exe version"
)

type (
	// DetectorOption configures a Detector.
	DetectorOption func(*Detector)

	// Detector resolves which container runtime is usable on the host.
	// Resolution is layered: the process-wide cache is consulted first,
	// then the configured preference, then the docker and podman
	// executables are probed in that order. The resolved tag is cached so
	// repeated calls perform no subprocess work.
	Detector struct {
		prober    *Prober
		cache     *Cache
		preferred string

		// mu single-flights the probe-and-store path so concurrent
		// callers racing an empty cache do not spawn duplicate probe
		// processes. Results are unaffected either way.
		mu sync.Mutex
	}
)

// WithPreferred sets the configured engine preference. Recognized values
// are "docker" and "podman" (case-insensitive, trimmed); anything else is
// ignored with a warning at detection time.
func WithPreferred(value string) DetectorOption {
	return func(d *Detector) {
		d.preferred = value
	}
}

// WithProber overrides the prober used for subprocess probing.
func WithProber(p *Prober) DetectorOption {
	return func(d *Detector) {
		d.prober = p
	}
}

// WithCache overrides the process-wide cache slot.
func WithCache(c *Cache) DetectorOption {
	return func(d *Detector) {
		d.cache = c
	}
}

// NewDetector creates a Detector with the default prober and cache.
func NewDetector(opts ...DetectorOption) *Detector {
	d := &Detector{
		prober: NewProber(),
		cache:  NewCache(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect resolves the container runtime and fails when none is found. The
// returned error names the missing prerequisite; it is the only
// environment-related failure this package surfaces as an error.
func (d *Detector) Detect(ctx context.Context) (Runtime, error) {
	r := d.DetectOptional(ctx)
	if !r.Available() {
		return RuntimeUnavailable, issue.NewErrorContext().
			WithOperation("detect container runtime").
			WithSuggestion("Install Docker or Podman and make sure it is on the PATH").
			WithSuggestion("Set container_engine in the crdetect config to point at a specific engine").
			Wrap(ErrNoRuntime).
			BuildError()
	}
	return r, nil
}

// DetectOptional resolves the container runtime, returning
// RuntimeUnavailable when no engine is usable. Environment absence is
// never an error here; subprocess-level faults never escape the probes.
func (d *Detector) DetectOptional(ctx context.Context) Runtime {
	if r, ok := d.cache.Load(); ok {
		return r
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Re-check under the lock: a concurrent caller may have filled the
	// cache while we waited.
	if r, ok := d.cache.Load(); ok {
		return r
	}

	r := d.resolve(ctx)
	d.cache.Store(r)
	return r
}

func (d *Detector) resolve(ctx context.Context) Runtime {
	if preferred, ok := ParseRuntime(d.preferred); ok && preferred.Available() {
		if r, ok := d.resolvePreferred(ctx, preferred); ok {
			return r
		}
		slog.Warn("configured container engine is not usable, falling back to auto-detection",
			"container_engine", strings.TrimSpace(d.preferred))
	} else if strings.TrimSpace(d.preferred) != "" {
		slog.Warn("ignoring unrecognized container engine preference",
			"container_engine", d.preferred, "recognized", "docker, podman")
	}

	if r, ok := d.lookForDockerOrPodman(ctx); ok {
		return r
	}
	if d.lookForPodman(ctx) {
		return RuntimePodman
	}
	return RuntimeUnavailable
}

func (d *Detector) resolvePreferred(ctx context.Context, preferred Runtime) (Runtime, bool) {
	switch preferred {
	case RuntimeDocker:
		r, ok := d.lookForDockerOrPodman(ctx)
		if !ok {
			return "", false
		}
		if r == RuntimePodman {
			slog.Warn("container engine preference is docker but the docker executable is an alias to podman, using podman")
		}
		return r, true
	case RuntimePodman:
		if d.lookForPodman(ctx) {
			return RuntimePodman, true
		}
	}
	return "", false
}

// lookForDockerOrPodman probes the docker executable. Some distributions
// ship a docker command that is really a Podman shim; the version banner
// is the only way to tell them apart, the filename proves nothing.
func (d *Detector) lookForDockerOrPodman(ctx context.Context) (Runtime, bool) {
	out := d.prober.Run(ctx, string(RuntimeDocker), "--version").Output
	switch {
	case strings.Contains(out, dockerBanner):
		return RuntimeDocker, true
	case isPodmanBanner(out):
		return RuntimePodman, true
	}
	return "", false
}

// lookForPodman probes the podman executable directly and confirms it by
// its own version banner.
func (d *Detector) lookForPodman(ctx context.Context) bool {
	return isPodmanBanner(d.prober.Run(ctx, string(RuntimePodman), "--version").Output)
}

// isPodmanBanner matches "podman version 4.9.0" and, on Windows,
// "podman.exe version 4.9.0".
func isPodmanBanner(out string) bool {
	return strings.HasPrefix(out, podmanBanner) || strings.HasPrefix(out, podmanBannerWindows)
}
