package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stitch/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [root]",
		Short: "Compose the project's trees and write the output bundles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) > 0 {
				root = args[0]
			}
			environment, _ := cmd.Flags().GetString("environment")
			output, _ := cmd.Flags().GetString("output")
			return c.app.Build(cmd.Context(), app.BuildOptions{
				Root:        root,
				OutputDir:   output,
				Environment: environment,
			})
		},
	}
	cmd.Flags().StringP("environment", "e", "", "Build environment (overrides the project configuration)")
	cmd.Flags().StringP("output", "o", app.DefaultOutputDir, "Output directory for the built assets")
	return cmd
}
