// SPDX-License-Identifier: MPL-2.0

package container

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// RuntimeDocker is the Docker container runtime.
	RuntimeDocker Runtime = "docker"
	// RuntimePodman is the Podman container runtime.
	RuntimePodman Runtime = "podman"
	// RuntimeUnavailable means no container runtime could be resolved.
	// It carries no executable name and cannot be probed.
	RuntimeUnavailable Runtime = "unavailable"
)

var (
	// ErrNoRuntime is the sentinel error behind the fatal "no container
	// runtime found" outcome of Detector.Detect.
	ErrNoRuntime = errors.New("no container runtime found")

	// ErrRuntimeUnavailable is the sentinel error wrapped by
	// UnavailableRuntimeError.
	ErrRuntimeUnavailable = errors.New("container runtime unavailable")
)

type (
	// Runtime identifies a resolved container runtime. It is a pure tag:
	// derived facts such as the rootless flag live in the Inspector's
	// memo table, not on the value itself.
	Runtime string

	// UnavailableRuntimeError is returned when an operation that needs a
	// concrete engine (ExecutableName, rootless inspection) is invoked on
	// RuntimeUnavailable. This is a caller bug, distinct from the
	// environment-absence outcome reported by ErrNoRuntime.
	UnavailableRuntimeError struct {
		// Op names the operation that was attempted.
		Op string
	}
)

// Error implements the error interface.
func (e *UnavailableRuntimeError) Error() string {
	return fmt.Sprintf("cannot %s: no container runtime is available (install Docker or Podman)", e.Op)
}

// Unwrap returns ErrRuntimeUnavailable so callers can use errors.Is.
func (e *UnavailableRuntimeError) Unwrap() error {
	return ErrRuntimeUnavailable
}

// ParseRuntime maps a textual tag to a Runtime. Matching is
// case-insensitive and ignores surrounding whitespace. The second return
// value is false for unrecognized input.
func ParseRuntime(s string) (Runtime, bool) {
	switch Runtime(strings.ToLower(strings.TrimSpace(s))) {
	case RuntimeDocker:
		return RuntimeDocker, true
	case RuntimePodman:
		return RuntimePodman, true
	case RuntimeUnavailable:
		return RuntimeUnavailable, true
	}
	return "", false
}

// String returns the textual tag.
func (r Runtime) String() string {
	return string(r)
}

// Available reports whether r identifies a concrete engine.
func (r Runtime) Available() bool {
	return r == RuntimeDocker || r == RuntimePodman
}

// ExecutableName returns the binary name to invoke for r. It returns an
// UnavailableRuntimeError when r does not identify a concrete engine.
func (r Runtime) ExecutableName() (string, error) {
	if !r.Available() {
		return "", &UnavailableRuntimeError{Op: "resolve executable name"}
	}
	return string(r), nil
}
