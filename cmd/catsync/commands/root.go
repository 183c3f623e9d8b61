// Package commands implements the CLI commands for catsync.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/catsync/internal/build"
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/engine/catalogbuild"
	"go.trai.ch/catsync/internal/engine/updater"
)

// CLI represents the command line interface for catsync.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	CheckForUpdate(ctx context.Context) (domain.UpdateInfo, error)
	StartDownload(ctx context.Context, onProgress updater.ProgressFunc) bool
	CancelDownload() bool
	WaitDownload()
	Purge() ([]string, error)
	Build(ctx context.Context) (*catalogbuild.Result, error)
	Load(ctx context.Context, key string) (any, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "catsync",
		Short:         "Keeps content catalogs and their bundles in sync with a remote host",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	// Read by main before the components are built.
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newDownloadCmd())
	rootCmd.AddCommand(c.newPurgeCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newLoadCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the stream prompts are read from. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}
