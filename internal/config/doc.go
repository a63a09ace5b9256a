// SPDX-License-Identifier: MPL-2.0

// Package config loads the crdetect configuration: a TOML file in the
// platform config directory plus CRDETECT_* environment overrides. The one
// setting that influences detection is container_engine, an optional
// preference for docker or podman; unrecognized values warn and fall back
// to auto-detection.
package config
