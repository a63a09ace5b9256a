// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
package platform

import "runtime"

// GOOS values this project cares about.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Current returns the GOOS of the running program.
func Current() string {
	return runtime.GOOS
}

// IsWindows reports whether the current OS is Windows.
func IsWindows() bool {
	return Current() == Windows
}
