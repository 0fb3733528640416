package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean <output-dir>",
		Short: "Remove generated picons and the build cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			return c.app.Clean(cmd.Context(), args[0], dryRun)
		},
	}

	cmd.Flags().Bool("dry-run", false, "Report actions without writing to disk")

	return cmd
}
