package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search {trash|delete|shred} TARGET DIR",
		Short: "Walk a directory for names close to TARGET and act on hits",
		Long: `Walk DIR looking for entries whose name is within edit distance one of
TARGET. Every near-match prompts whether to act on it now and whether to keep
searching; confirmed hits are trashed, deleted or shredded.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Search(args[0], args[1], args[2], recursive(cmd))
			return err
		},
	}
}
