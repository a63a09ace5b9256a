// SPDX-License-Identifier: MPL-2.0

package container

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

const (
	// dockerRootlessMarker is listed bare under SecurityOptions in
	// `docker info` output when the daemon runs rootless.
	dockerRootlessMarker = "rootless"

	// podmanRootlessMarker is how `podman info` reports rootless state in
	// its host section.
	podmanRootlessMarker = "rootless: true"
)

type (
	// InspectorOption configures an Inspector.
	InspectorOption func(*Inspector)

	// Inspector determines whether a resolved runtime executes rootless.
	// The answer is memoized per runtime: the `info` probe runs at most
	// once per runtime for the lifetime of the Inspector, and the stored
	// flag never changes afterwards.
	Inspector struct {
		prober *Prober

		mu   sync.Mutex
		memo map[Runtime]bool
	}
)

// WithInspectorProber overrides the prober used for the info probe.
func WithInspectorProber(p *Prober) InspectorOption {
	return func(i *Inspector) {
		i.prober = p
	}
}

// NewInspector creates an Inspector with the default prober.
func NewInspector(opts ...InspectorOption) *Inspector {
	i := &Inspector{
		prober: NewProber(),
		memo:   make(map[Runtime]bool),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Rootless reports whether r runs without elevated privileges. It returns
// an UnavailableRuntimeError when r does not identify a concrete engine;
// every probe-level fault is classified as rootful, matching a default
// installation, and never surfaces as an error.
func (i *Inspector) Rootless(ctx context.Context, r Runtime) (bool, error) {
	if !r.Available() {
		return false, &UnavailableRuntimeError{Op: "inspect rootless state"}
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if rootless, ok := i.memo[r]; ok {
		return rootless, nil
	}
	rootless := i.probeRootless(ctx, r)
	i.memo[r] = rootless
	return rootless, nil
}

func (i *Inspector) probeRootless(ctx context.Context, r Runtime) bool {
	res := i.prober.Run(ctx, string(r), "info")
	if res.ExitCode != 0 {
		// A stopped daemon, a missing binary and a timed-out probe all
		// land here. Assume rootful and tell the operator why the answer
		// may be off.
		slog.Warn("rootless detection may be unreliable, container engine info command failed",
			"command", string(r)+" info", "exit_code", res.ExitCode)
		slog.Debug("container engine info output", "command", string(r)+" info", "output", res.Output)
		return false
	}

	marker := dockerRootlessMarker
	if r == RuntimePodman {
		marker = podmanRootlessMarker
	}
	for line := range strings.SplitSeq(res.Output, "\n") {
		if strings.TrimSpace(line) == marker {
			return true
		}
	}
	return false
}
