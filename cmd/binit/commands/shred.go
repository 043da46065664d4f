package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newShredCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shred PATH...",
		Short: "Overwrite files with zeros, then delete them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := cmd.Flags().GetInt("runs")
			if err != nil {
				return err
			}
			if runs < 0 {
				return zerr.With(zerr.New("runs must not be negative"), "runs", runs)
			}
			if !cmd.Flags().Changed("runs") {
				// Let the configured default take over.
				runs = -1
			}

			_, err = c.app.Shred(args, runs, recursive(cmd))
			return err
		},
	}

	cmd.Flags().IntP("runs", "n", 1, "Number of overwrite passes")
	return cmd
}
