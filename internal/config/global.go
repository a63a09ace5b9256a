// SPDX-License-Identifier: MPL-2.0

package config

var (
	// configDirOverride allows tests to override the config directory.
	// Necessary because os.UserHomeDir() doesn't reliably respect the HOME
	// environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// configFilePathOverride pins loading to an exact file, set by the
	// --config CLI flag.
	configFilePathOverride string
)

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
}

// SetConfigDirOverride sets a custom config directory path. Primarily
// intended for testing.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride pins configuration loading to the given file.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}
