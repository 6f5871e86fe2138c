// Package cli implements the pattern command-line application.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"gitlab.com/stephen-fox/cyclic/internal/config"
	"gitlab.com/stephen-fox/cyclic/pattern"
)

const (
	appName = "pattern"

	configFlag   = "config"
	alphabetFlag = "alphabet"
	lengthFlag   = "length"
	verboseFlag  = "verbose"
)

// ErrNoPatterns is returned when the generator rejected its arguments.
// The reason has already been written to stderr by the time the
// command returns, so callers should exit without printing it again.
var ErrNoPatterns = errors.New("no patterns were generated")

// options holds the state shared by all subcommands.
type options struct {
	configPath string
	alphabet   string
	length     int
	verbose    bool

	config  config.Config
	logger  *log.Logger
	verbLog *log.Logger
}

// NewRootCommand creates the pattern command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Generate marker patterns for finding offsets in buffers",
		Long: appName + ` generates fixed-length strings that count through an alphabet
in odometer order (AAAA, AAAB, AAAC, ...). The patterns are useful
for laying out payloads and finding which part of a payload ended
up where.

The alphabet defaults to the uppercase Latin letters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, configFlag, "", "YAML file containing default settings")
	flags.StringVarP(&opts.alphabet, alphabetFlag, "a", pattern.UpperLatin, "The symbols to count with")
	flags.IntVarP(&opts.length, lengthFlag, "l", 4, "The length of each pattern in symbols")
	flags.BoolVarP(&opts.verbose, verboseFlag, "v", false, "Enable verbose logging")

	root.AddCommand(newGenCommand(opts))
	root.AddCommand(newTableCommand(opts))
	root.AddCommand(newStreamCommand(opts))
	root.AddCommand(newOffsetCommand(opts))
	root.AddCommand(newIndexCommand(opts))
	root.AddCommand(newAtCommand(opts))

	return root
}

// resolve loads the configuration file and applies the flags that
// were explicitly set on top of it.
func (o *options) resolve(cmd *cobra.Command) error {
	o.logger = log.New(cmd.ErrOrStderr(), "", 0)

	o.verbLog = log.New(io.Discard, "", 0)
	if o.verbose {
		o.verbLog = log.New(cmd.ErrOrStderr(), "[verbose] ", 0)
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed(alphabetFlag) {
		cfg.Alphabet = o.alphabet
	}

	if cmd.Flags().Changed(lengthFlag) {
		cfg.Length = o.length
	}

	o.config = cfg

	return nil
}

func (o *options) generator() *pattern.Generator {
	return &pattern.Generator{
		OptLogger: o.logger,
	}
}

// logCycle reports on the verbose logger whether numPatterns patterns
// are enough to wrap the counter.
func (o *options) logCycle(numPatterns int) {
	alphabet := pattern.NewAlphabet(o.config.Alphabet)

	o.verbLog.Printf("alphabet: %q (base %d), length: %d, count: %d",
		o.config.Alphabet, alphabet.Base(), o.config.Length, numPatterns)

	cycle, ok := pattern.CycleLen(alphabet.Base(), o.config.Length)
	if ok && numPatterns > 0 && uint64(numPatterns) > cycle {
		o.verbLog.Printf("patterns repeat after %d combinations", cycle)
	}
}

// parseIntArg parses a positional integer argument. Range checks
// are left to the pattern package.
func parseIntArg(name string, value string) (int, error) {
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s %q - %w", name, value, err)
	}

	return i, nil
}
