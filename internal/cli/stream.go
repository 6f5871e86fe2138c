package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/stephen-fox/cyclic/pattern"
)

const defaultStreamBytes = 256

func newStreamCommand(opts *options) *cobra.Command {
	var numBytes int
	var noNewLine bool

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Print the concatenated pattern stream",
		Long: `Print the first N bytes of the stream formed by concatenating
consecutive patterns. Pass the output to a program under test,
then use the offset command to find where a fragment came from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stream, err := opts.newStream()
			if err != nil {
				return err
			}

			err = stream.WriteToN(cmd.OutOrStdout(), numBytes)
			if err != nil {
				return fmt.Errorf("failed to write pattern stream - %w", err)
			}

			if !noNewLine {
				fmt.Fprintln(cmd.OutOrStdout())
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&numBytes, "bytes", "b", defaultStreamBytes, "The number of bytes to write")
	cmd.Flags().BoolVarP(&noNewLine, "no-newline", "n", false, "Do not append a new line character to the output")

	return cmd
}

// newStream validates the resolved settings and creates a Stream
// from them.
func (o *options) newStream() (*pattern.Stream, error) {
	err := pattern.Validate(o.config.Alphabet, 1, o.config.Length)
	if err != nil {
		return nil, err
	}

	return &pattern.Stream{
		Alphabet:      o.config.Alphabet,
		PatternLength: o.config.Length,
		OptLogger:     o.verbLog,
	}, nil
}
