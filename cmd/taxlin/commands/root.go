// Package commands implements the CLI commands for the taxlin tool.
package commands

import (
	"context"
	"io"
	"unicode/utf8"

	"github.com/lineagetools/taxlin/internal/app"
	"github.com/lineagetools/taxlin/internal/build"
	"github.com/lineagetools/taxlin/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for taxlin.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "taxlin",
		Short:         "Format NCBI taxonomic lineages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "taxlin.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().String("db", "", "Path to the taxonomy database (overrides config)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newLineageCmd())
	rootCmd.AddCommand(c.newAnnotateCmd())
	rootCmd.AddCommand(c.newBuildDBCmd())
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

// SetOut sets the writer for command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// options assembles app.Options from the persistent flags.
func (c *CLI) options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	dbPath, _ := cmd.Flags().GetString("db")
	return app.Options{
		ConfigPath:   configPath,
		DatabasePath: dbPath,
	}
}

// parseDelimiter converts a delimiter flag value to a rune. An empty value
// means no override.
func parseDelimiter(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	if s == "\\t" {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, zerr.With(domain.ErrInvalidDelimiter, "delimiter", s)
	}
	return r, nil
}
