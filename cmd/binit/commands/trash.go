package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTrashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trash PATH...",
		Short: "Move files or directories to the trash bin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.Trash(args)
		},
	}
}
