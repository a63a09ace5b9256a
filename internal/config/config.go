// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"crdetect/internal/issue"
	"crdetect/internal/platform"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "crdetect"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix is the prefix for environment variable overrides, e.g.
	// CRDETECT_CONTAINER_ENGINE.
	EnvPrefix = "CRDETECT"
)

type (
	// Config is the loaded crdetect configuration.
	Config struct {
		// ContainerEngine specifies whether to prefer "podman" or "docker"
		// during detection. Empty means auto-detect.
		ContainerEngine ContainerEngine `toml:"container_engine" mapstructure:"container_engine"`

		// UI holds presentation settings.
		UI UIConfig `toml:"ui" mapstructure:"ui"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables debug-level output.
		Verbose bool `toml:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no file and no
// environment overrides are present.
func DefaultConfig() *Config {
	return &Config{
		ContainerEngine: EngineAuto,
		UI:              UIConfig{Verbose: false},
	}
}

// ConfigDir returns the crdetect configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests and the --config flag to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch platform.Current() {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration from the config file (if present) and the
// environment. A missing file is not an error; defaults apply. An
// unrecognized container_engine value is logged as a warning and reset to
// auto-detection, per the detection contract that a bad preference never
// fails resolution on its own.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("container_engine", string(defaults.ContainerEngine))
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFilePathOverride != "" {
		v.SetConfigFile(configFilePathOverride)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFilePathOverride).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file contains valid TOML").
				Wrap(err).
				BuildError()
		}
	} else {
		cfgDir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(cfgDir)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, issue.NewErrorContext().
					WithOperation("load configuration").
					WithResource(filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)).
					WithSuggestion("Check that the file contains valid TOML").
					WithSuggestion("Run 'crdetect config init' to write a fresh default config").
					Wrap(err).
					BuildError()
			}
			// No config file found, defaults apply.
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.ContainerEngine.Validate(); err != nil {
		slog.Warn("ignoring unrecognized container_engine setting",
			"value", string(cfg.ContainerEngine), "recognized", "docker, podman")
		cfg.ContainerEngine = EngineAuto
	} else {
		cfg.ContainerEngine = cfg.ContainerEngine.Normalize()
	}

	return &cfg, nil
}
