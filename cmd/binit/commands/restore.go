package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore NAME...",
		Short: "Restore trashed items by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.app.Restore(args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d item(s)\n", n)
			return nil
		},
	}
}
