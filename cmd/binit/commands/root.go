// Package commands implements the CLI commands for binit.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/binit/internal/app"
)

// CLI represents the command line interface for binit.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "binit",
		Short:         "Trash, restore, delete and shred files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("recursive", "r", false, "Recurse into directories without prompting")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newTrashCmd())
	rootCmd.AddCommand(c.newRestoreCmd())
	rootCmd.AddCommand(c.newPurgeCmd())
	rootCmd.AddCommand(c.newDeleteCmd())
	rootCmd.AddCommand(c.newShredCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// recursive reads the persistent recursion flag off the invoked command.
func recursive(cmd *cobra.Command) bool {
	r, _ := cmd.Flags().GetBool("recursive")
	return r
}

// ConfigPathFromArgs extracts the value of the --config/-c flag from raw
// arguments. The config file must be resolved before the command tree runs,
// because the components the commands depend on are built from it.
func ConfigPathFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case len(arg) > len("--config=") && arg[:len("--config=")] == "--config=":
			return arg[len("--config="):]
		case len(arg) > len("-c=") && arg[:len("-c=")] == "-c=":
			return arg[len("-c="):]
		}
	}
	return ""
}
