package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

func newTableCommand(opts *options) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print patterns alongside their index and byte offset",
		Long: `Print a table of patterns. The offset column is the byte offset
of each pattern in the concatenated pattern stream.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.logCycle(count)

			patterns := opts.generator().Generate(opts.config.Alphabet, count, opts.config.Length)
			if len(patterns) == 0 {
				return ErrNoPatterns
			}

			st := newStyles(cmd.OutOrStdout())

			tbl := table.New("INDEX", "OFFSET", "PATTERN").
				WithWriter(cmd.OutOrStdout()).
				WithHeaderFormatter(func(format string, vals ...interface{}) string {
					return st.header.Render(fmt.Sprintf(format, vals...))
				}).
				WithWidthFunc(lipgloss.Width).
				WithPadding(2)

			offset := 0

			for i, p := range patterns {
				tbl.AddRow(i, fmt.Sprintf("0x%x", offset), p)

				offset += len(p)
			}

			tbl.Print()

			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 16, "The number of patterns to list")

	return cmd
}
