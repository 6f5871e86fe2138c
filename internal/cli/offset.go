package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"gitlab.com/stephen-fox/cyclic/pattern"
)

const defaultSearchBytes = 8192

type offsetOptions struct {
	fragment    string
	numBytes    int
	wrongEndian bool
	shorten     bool
	quiet       bool
}

func newOffsetCommand(opts *options) *cobra.Command {
	offsetOpts := &offsetOptions{}

	cmd := &cobra.Command{
		Use:   "offset -f FRAGMENT",
		Short: "Find where a fragment appears in the pattern stream",
		Long: `Find a fragment in the pattern stream. Useful for understanding
how a payload overwrites process state (e.g., finding the offset
of a payload fragment in a variable that was overwritten by
a stack-based buffer overflow).

A fragment starting with "0x" is hex decoded.`,
		Example: `  ` + appName + ` offset -f AAAF
  ` + appName + ` offset -f 0x46414141 -r`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOffset(cmd, opts, offsetOpts)
		},
	}

	cmd.Flags().StringVarP(&offsetOpts.fragment, "fragment", "f", "", "The fragment to find")
	cmd.Flags().IntVarP(&offsetOpts.numBytes, "bytes", "b", defaultSearchBytes, "The number of stream bytes to search")
	cmd.Flags().BoolVarP(&offsetOpts.wrongEndian, "reverse", "r", false, "Reverse fragment's endianness")
	cmd.Flags().BoolVar(&offsetOpts.shorten, "retry", false, "Repeatedly try shortening the fragment if it is not found")
	cmd.Flags().BoolVarP(&offsetOpts.quiet, "quiet", "q", false, "Only output the range without any visualization")

	return cmd
}

func runOffset(cmd *cobra.Command, opts *options, offsetOpts *offsetOptions) error {
	if len(offsetOpts.fragment) == 0 {
		return errors.New("please specify a fragment string")
	}

	fragment, err := decodeFragment(offsetOpts.fragment, offsetOpts.wrongEndian)
	if err != nil {
		return err
	}

	stream, err := opts.newStream()
	if err != nil {
		return err
	}

	streamBytes, err := stream.Pattern(offsetOpts.numBytes)
	if err != nil {
		return fmt.Errorf("failed to generate pattern stream - %w", err)
	}

	patternLength := opts.config.Length

	var loc pattern.Location

	for {
		loc, err = pattern.Locate(streamBytes, fragment, patternLength)
		if err == nil {
			break
		}

		if !offsetOpts.shorten || len(fragment) <= 1 {
			return fmt.Errorf("failed to find fragment in the first %d bytes of the pattern stream (hexdump of fragment:\n%s)",
				len(streamBytes), strings.TrimSpace(hex.Dump(fragment)))
		}

		fragment = fragment[0 : len(fragment)-1]

		opts.verbLog.Printf("shortening fragment to: '%s'...",
			strings.TrimSpace(hex.Dump(fragment)))
	}

	out := cmd.OutOrStdout()

	infoStr := fmt.Sprintf("%s, pattern %d, symbol %d",
		loc, loc.PatternIndex, loc.SymbolOffset)

	if offsetOpts.quiet {
		fmt.Fprintln(out, loc)
		return nil
	}

	start, end := patternWindow(streamBytes, loc, patternLength)

	st := newStyles(out)

	fmt.Fprintf(out, "%s%s%s\n",
		streamBytes[start:loc.Offset],
		st.highlight.Render(string(streamBytes[loc.Offset:loc.End])),
		streamBytes[loc.End:end])

	spaces := strings.Repeat(" ", utf8.RuneCount(streamBytes[start:loc.Offset]))

	fmt.Fprintf(out, "%s%s\n",
		spaces, strings.Repeat("^", utf8.RuneCount(streamBytes[loc.Offset:loc.End])))

	fmt.Fprintf(out, "%s%s\n",
		spaces, infoStr)

	return nil
}

// decodeFragment hex decodes str if it starts with "0x", and
// optionally reverses the resulting bytes.
func decodeFragment(str string, wrongEndian bool) ([]byte, error) {
	var fragment []byte

	if strings.HasPrefix(str, "0x") {
		var err error

		fragment, err = hex.DecodeString(strings.TrimPrefix(str, "0x"))
		if err != nil {
			return nil, fmt.Errorf("failed to hex decode fragment string - %w", err)
		}
	} else {
		fragment = []byte(str)
	}

	if wrongEndian {
		fragmentLen := len(fragment)
		temp := make([]byte, fragmentLen)

		for i := range fragment {
			temp[fragmentLen-1-i] = fragment[i]
		}

		fragment = temp
	}

	return fragment, nil
}

// patternWindow returns the byte range of the whole patterns that
// contain the located fragment.
func patternWindow(stream []byte, loc pattern.Location, patternLength int) (int, int) {
	start := loc.Offset

	for i := 0; i < loc.SymbolOffset; i++ {
		_, size := utf8.DecodeLastRune(stream[0:start])
		start -= size
	}

	end := start
	symbols := 0

	for end < len(stream) && (end < loc.End || symbols%patternLength != 0) {
		_, size := utf8.DecodeRune(stream[end:])
		end += size
		symbols++
	}

	return start, end
}
