// SPDX-License-Identifier: MPL-2.0

// Package cmd wires the crdetect CLI: detect resolves the container
// runtime, rootless inspects privilege mode, and config manages the TOML
// configuration file.
package cmd
