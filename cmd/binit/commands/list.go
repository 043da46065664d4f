package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/binit/internal/adapters/term"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the contents of the trash bin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := cmd.Flags().GetString("search")
			if err != nil {
				return err
			}

			items, err := c.app.List()
			if err != nil {
				return err
			}
			return term.RenderList(cmd.OutOrStdout(), term.FilterItems(items, query))
		},
	}

	cmd.Flags().String("search", "", "Fuzzy-filter items by name")
	return cmd
}
