package cli

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type genOptions struct {
	count      int
	first      bool
	separator  string
	outputPath string
	progress   bool
}

func newGenCommand(opts *options) *cobra.Command {
	genOpts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen [ALPHABET [LENGTH [COUNT]]]",
		Short: "Print one or more patterns",
		Long: `Print patterns on one line, separated by spaces.

The alphabet, pattern length, and pattern count may be specified
as positional arguments instead of flags.`,
		Example: `  ` + appName + ` gen -n 5 -a AB
  ` + appName + ` gen 012 2 4
  ` + appName + ` gen --first -l 8`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, args, opts, genOpts)
		},
	}

	cmd.Flags().IntVarP(&genOpts.count, "count", "n", 1, "The number of patterns to generate")
	cmd.Flags().BoolVar(&genOpts.first, "first", false, "Only print the first pattern")
	cmd.Flags().StringVarP(&genOpts.separator, "separator", "s", " ", "The string placed between patterns")
	cmd.Flags().StringVarP(&genOpts.outputPath, "output", "o", "", "Write the patterns to a file instead of stdout")
	cmd.Flags().BoolVar(&genOpts.progress, "progress", false, "Display a progress bar when writing to a file")

	return cmd
}

func runGen(cmd *cobra.Command, args []string, opts *options, genOpts *genOptions) error {
	cfg := opts.config

	numPatterns := cfg.Count
	if cmd.Flags().Changed("count") {
		numPatterns = genOpts.count
	}

	separator := cfg.Separator
	if cmd.Flags().Changed("separator") {
		separator = genOpts.separator
	}

	var err error

	switch len(args) {
	case 3:
		numPatterns, err = parseIntArg("pattern count", args[2])
		if err != nil {
			return err
		}
		fallthrough
	case 2:
		cfg.Length, err = parseIntArg("pattern length", args[1])
		if err != nil {
			return err
		}
		fallthrough
	case 1:
		cfg.Alphabet = args[0]
	}

	opts.config = cfg
	opts.logCycle(numPatterns)

	patterns := opts.generator().Generate(cfg.Alphabet, numPatterns, cfg.Length)
	if len(patterns) == 0 {
		return ErrNoPatterns
	}

	if genOpts.first {
		fmt.Fprintln(cmd.OutOrStdout(), patterns[0])
		return nil
	}

	if genOpts.outputPath == "" {
		return writePatterns(cmd.OutOrStdout(), patterns, separator, nil, opts.verbLog)
	}

	var bar progress
	if genOpts.progress {
		bar = progressbar.NewOptions(len(patterns),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("writing patterns"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionThrottle(100*time.Millisecond))
	}

	f, err := os.Create(genOpts.outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file - %w", err)
	}
	defer f.Close()

	err = writePatterns(f, patterns, separator, bar, opts.verbLog)
	if err != nil {
		return fmt.Errorf("failed to write patterns to %q - %w", genOpts.outputPath, err)
	}

	opts.verbLog.Printf("wrote %d patterns to %q", len(patterns), genOpts.outputPath)

	return f.Close()
}

// progress is satisfied by *progressbar.ProgressBar.
type progress interface {
	Add(num int) error
	Finish() error
}

// writePatterns writes patterns as a single line. bar is optional.
// Progress bar failures do not affect the output, so they are only
// reported on logger.
func writePatterns(w io.Writer, patterns []string, separator string, bar progress, logger *log.Logger) error {
	bw := bufio.NewWriter(w)

	for i, p := range patterns {
		if i > 0 {
			bw.WriteString(separator)
		}

		bw.WriteString(p)

		if bar != nil {
			err := bar.Add(1)
			if err != nil {
				logger.Printf("failed to update progress bar - %s", err)
				bar = nil
			}
		}
	}

	bw.WriteByte('\n')

	if bar != nil {
		err := bar.Finish()
		if err != nil {
			logger.Printf("failed to finish progress bar - %s", err)
		}
	}

	return bw.Flush()
}
