package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newLineageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lineage [taxids...]",
		Short: "Print the formatted lineage for one or more taxon ids",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Lookup(cmd.Context(), args, cmd.OutOrStdout(), c.options(cmd))
		},
	}
}
