// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"crdetect/internal/container"

	"github.com/spf13/cobra"
)

var rootlessCmd = &cobra.Command{
	Use:   "rootless",
	Short: "Report whether the detected runtime runs rootless",
	Long: `Detect the container runtime, then inspect it for rootless mode.

The answer comes from the engine's info command: Docker lists a bare
"rootless" security option, Podman reports "rootless: true". A failing
info command (stopped daemon, missing binary) classifies as rootful, the
default installation mode; run with --verbose to see why the probe was
inconclusive.`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		detector := container.NewDetector(
			container.WithPreferred(string(cfg.ContainerEngine)),
		)
		r, err := detector.Detect(c.Context())
		if err != nil {
			return reportDetectionFailure(c, err)
		}

		inspector := container.NewInspector()
		rootless, err := inspector.Rootless(c.Context(), r)
		if err != nil {
			return err
		}

		// Plain output for scriptability; the runtime goes to stderr so
		// `crdetect rootless` pipes cleanly.
		fmt.Fprintln(c.ErrOrStderr(), SubtitleStyle.Render("runtime: "+r.String()))
		fmt.Fprintln(c.OutOrStdout(), strconv.FormatBool(rootless))
		return nil
	},
}
