// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"crdetect/internal/container"
	"crdetect/internal/issue"

	"github.com/spf13/cobra"
)

// detectOptional makes detect print 'unavailable' instead of failing.
var detectOptional bool

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the installed container runtime",
	Long: `Resolve which container engine is usable on this host.

Resolution honors the container_engine setting first, then probes docker
and podman in that order, telling a real Docker CLI apart from a docker
command that aliases Podman by its version banner. The result is cached
process-wide, so repeated calls in the same process spawn no further
probes.`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		detector := container.NewDetector(
			container.WithPreferred(string(cfg.ContainerEngine)),
		)

		if detectOptional {
			r := detector.DetectOptional(c.Context())
			if !r.Available() {
				fmt.Fprintln(c.OutOrStdout(), WarningStyle.Render(r.String()))
				return nil
			}
			fmt.Fprintln(c.OutOrStdout(), SuccessStyle.Render(r.String()))
			return nil
		}

		r, err := detector.Detect(c.Context())
		if err != nil {
			return reportDetectionFailure(c, err)
		}
		fmt.Fprintln(c.OutOrStdout(), SuccessStyle.Render(r.String()))
		return nil
	},
}

func init() {
	detectCmd.Flags().BoolVar(&detectOptional, "optional", false,
		"print 'unavailable' instead of failing when no runtime is found")
}

// reportDetectionFailure prints the actionable message plus catalog doc
// links before handing the error back to cobra.
func reportDetectionFailure(c *cobra.Command, err error) error {
	fmt.Fprintln(c.ErrOrStderr(), ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	if known, ok := issue.Lookup(issue.ContainerRuntimeNotFoundId); ok {
		fmt.Fprintln(c.ErrOrStderr(), SubtitleStyle.Render("See also:"))
		for _, link := range known.DocLinks() {
			fmt.Fprintln(c.ErrOrStderr(), "  "+CmdStyle.Render(string(link)))
		}
	}
	c.SilenceErrors = true
	c.SilenceUsage = true
	return err
}
