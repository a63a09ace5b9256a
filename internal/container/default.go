// SPDX-License-Identifier: MPL-2.0

package container

import (
	"context"
	"os"
	"sync"
)

// preferredEngineEnv mirrors the config file's container_engine setting for
// callers that use the package-level API without loading configuration.
// The CLI builds its own Detector from the loaded config instead.
const preferredEngineEnv = "CRDETECT_CONTAINER_ENGINE"

var (
	defaultOnce      sync.Once
	defaultDetector  *Detector
	defaultInspector *Inspector
)

func defaults() (*Detector, *Inspector) {
	defaultOnce.Do(func() {
		prober := NewProber()
		defaultDetector = NewDetector(
			WithProber(prober),
			WithPreferred(os.Getenv(preferredEngineEnv)),
		)
		defaultInspector = NewInspector(WithInspectorProber(prober))
	})
	return defaultDetector, defaultInspector
}

// DetectRuntime resolves the container runtime using the process-wide
// default detector, failing when none is found. See Detector.Detect.
func DetectRuntime(ctx context.Context) (Runtime, error) {
	d, _ := defaults()
	return d.Detect(ctx)
}

// DetectRuntimeOptional resolves the container runtime using the
// process-wide default detector, returning RuntimeUnavailable when none is
// found. See Detector.DetectOptional.
func DetectRuntimeOptional(ctx context.Context) Runtime {
	d, _ := defaults()
	return d.DetectOptional(ctx)
}

// Rootless reports whether r runs rootless, using the process-wide default
// inspector. See Inspector.Rootless.
func Rootless(ctx context.Context, r Runtime) (bool, error) {
	_, i := defaults()
	return i.Rootless(ctx, r)
}
