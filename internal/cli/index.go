package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gitlab.com/stephen-fox/cyclic/pattern"
)

func newIndexCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "index PATTERN",
		Short: "Print the counter value of a pattern",
		Long: `Print the zero-indexed position of PATTERN in the pattern sequence.
The pattern length is taken from PATTERN itself.`,
		Example: `  ` + appName + ` index AABA`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := pattern.Index(opts.config.Alphabet, args[0])
			if err != nil {
				return fmt.Errorf("failed to find index of %q - %w", args[0], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), k)

			return nil
		},
	}
}

func newAtCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "at K",
		Short:   "Print the K-th pattern (zero-indexed)",
		Example: `  ` + appName + ` at 26`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("failed to parse index %q - %w", args[0], err)
			}

			p, err := pattern.At(opts.config.Alphabet, k, opts.config.Length)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), p)

			return nil
		},
	}
}
