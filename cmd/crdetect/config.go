// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"crdetect/internal/config"
	"crdetect/internal/issue"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage crdetect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		out, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}
		fmt.Fprint(c.OutOrStdout(), string(out))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		dir, err := config.ConfigDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		path := filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt)
		if _, err := os.Stat(path); err == nil {
			return issue.NewErrorContext().
				WithOperation("initialize configuration").
				WithResource(path).
				WithSuggestion("Remove the existing file first if you want a fresh default").
				Wrap(os.ErrExist).
				BuildError()
		}

		out, err := toml.Marshal(config.DefaultConfig())
		if err != nil {
			return fmt.Errorf("failed to render default config: %w", err)
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Fprintln(c.OutOrStdout(), SuccessStyle.Render("Wrote ")+CmdStyle.Render(path))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
