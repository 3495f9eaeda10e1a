package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newAnnotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate <input> [output]",
		Short: "Replace a taxon id column in a delimited file with formatted lineages",
		Long: `Annotate reads a delimited table, replaces the taxon id column with
formatted lineages, and writes the result. Use "-" for stdin or stdout.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(cmd)

			delim, _ := cmd.Flags().GetString("delimiter")
			d, err := parseDelimiter(delim)
			if err != nil {
				return err
			}
			opts.Delimiter = d
			opts.Column, _ = cmd.Flags().GetString("column")

			outPath := "-"
			if len(args) == 2 {
				outPath = args[1]
			}
			return c.app.Annotate(cmd.Context(), args[0], outPath, opts)
		},
	}
	cmd.Flags().StringP("delimiter", "d", "", `Field delimiter, e.g. "," or "\t" (overrides config)`)
	cmd.Flags().String("column", "", "Header name of the taxon id column (overrides config)")
	return cmd
}
