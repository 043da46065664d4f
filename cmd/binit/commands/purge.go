package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newPurgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge [NAME...]",
		Short: "Permanently remove items from the trash bin",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := cmd.Flags().GetBool("all")
			if err != nil {
				return err
			}
			if !all && len(args) == 0 {
				return zerr.New("specify item names or --all")
			}
			return c.app.Purge(args, all)
		},
	}

	cmd.Flags().Bool("all", false, "Purge every trashed item")
	return cmd
}
