// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// EngineAuto leaves engine selection to probing. Zero value.
	EngineAuto ContainerEngine = ""
	// EngineDocker prefers Docker as the container runtime.
	EngineDocker ContainerEngine = "docker"
	// EnginePodman prefers Podman as the container runtime.
	EnginePodman ContainerEngine = "podman"
)

// ErrInvalidContainerEngine is the sentinel error wrapped by
// InvalidContainerEngineError.
var ErrInvalidContainerEngine = errors.New("invalid container engine")

type (
	// ContainerEngine specifies which container runtime to prefer during
	// detection.
	ContainerEngine string

	// InvalidContainerEngineError is returned when a ContainerEngine value
	// is not recognized. It wraps ErrInvalidContainerEngine for errors.Is
	// compatibility.
	InvalidContainerEngineError struct {
		Value ContainerEngine
	}
)

// Error implements the error interface.
func (e *InvalidContainerEngineError) Error() string {
	return fmt.Sprintf("invalid container engine %q (valid: docker, podman)", e.Value)
}

// Unwrap returns ErrInvalidContainerEngine so callers can use errors.Is.
func (e *InvalidContainerEngineError) Unwrap() error {
	return ErrInvalidContainerEngine
}

// Normalize returns the value trimmed and lowercased, the form the
// detector and Validate operate on.
func (e ContainerEngine) Normalize() ContainerEngine {
	return ContainerEngine(strings.ToLower(strings.TrimSpace(string(e))))
}

// Validate returns an error if the value is not one of the recognized
// engines. The zero value is valid and means auto-detection.
func (e ContainerEngine) Validate() error {
	switch e.Normalize() {
	case EngineAuto, EngineDocker, EnginePodman:
		return nil
	}
	return &InvalidContainerEngineError{Value: e}
}
