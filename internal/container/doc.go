// SPDX-License-Identifier: MPL-2.0

// Package container detects which container engine (Docker or Podman) is
// installed and usable on the host, and whether it runs in rootless mode.
//
// Resolution is layered: a configured preference is honored first, then the
// docker and podman executables are probed in a fixed order by invoking
// their version commands and classifying the banner text. The banner check
// also catches hosts where the docker command is an alias to Podman. The
// resolved tag is remembered in a process-wide cache so repeated detection
// performs no subprocess work.
//
// Probes are bounded, blocking invocations of external executables.
// Missing binaries, timeouts and non-zero exits are expected outcomes and
// are folded into the classification, never raised as errors; the only
// error conditions are "no runtime found" from Detect and invoking
// runtime-specific operations on RuntimeUnavailable.
package container
