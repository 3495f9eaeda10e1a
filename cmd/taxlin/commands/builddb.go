package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-db <taxdump>",
		Short: "Build the taxonomy database from an NCBI taxdump",
		Long: `Build-db reads an NCBI taxdump, either an extracted directory or a
taxdump.tar.gz archive, and writes the sqlite taxonomy database that the
lineage and annotate commands query.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.BuildDB(cmd.Context(), args[0], c.options(cmd))
		},
	}
}
