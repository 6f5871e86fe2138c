package cli

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with args, returning stdout,
// stderr, and the command's error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)

	root := NewRootCommand()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestGen(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"defaults", []string{"gen"}, "AAAA\n"},
		{"flags", []string{"gen", "-a", "AB", "-n", "5"}, "AAAA AAAB AABA AABB ABAA\n"},
		{"positional", []string{"gen", "012", "2", "4"}, "00 01 02 10\n"},
		{"positional alphabet only", []string{"gen", "-n", "3", "01"}, "0000 0001 0010\n"},
		{"first", []string{"gen", "--first", "-n", "10", "-l", "2"}, "AA\n"},
		{"separator", []string{"gen", "-a", "01", "-l", "2", "-n", "4", "-s", ","}, "00,01,10,11\n"},
		{"wraps", []string{"gen", "AB", "1", "3"}, "A B A\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestGen_InvalidArguments(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantWarning string
	}{
		{"empty alphabet", []string{"gen", "-a", "", "-n", "3"}, "warning: input alphabet cannot be empty"},
		{"zero count", []string{"gen", "AB", "2", "0"}, "warning: number of patterns must be a positive integer"},
		{"zero length", []string{"gen", "AB", "0", "3"}, "warning: pattern length must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, ErrNoPatterns)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.wantWarning)
		})
	}
}

func TestGen_NonIntegerArgument(t *testing.T) {
	_, _, err := execute(t, "gen", "AB", "four")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to parse pattern length "four"`)
}

func TestGen_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.txt")

	stdout, _, err := execute(t, "gen", "-a", "01", "-l", "3", "-n", "8", "-o", path, "--progress")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "000 001 010 011 100 101 110 111\n", string(contents))
}

func TestGen_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cyclic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
alphabet: "xyz"
length: 2
count: 4
separator: "|"
`), 0o644))

	stdout, _, err := execute(t, "--config", path, "gen")
	require.NoError(t, err)
	assert.Equal(t, "xx|xy|xz|yx\n", stdout)

	stdout, _, err = execute(t, "--config", path, "gen", "-l", "1", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, "x|y\n", stdout)
}

func TestGen_ConfigEmptySeparator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cyclic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
alphabet: "AB"
length: 2
count: 3
separator: ""
`), 0o644))

	stdout, _, err := execute(t, "--config", path, "gen")
	require.NoError(t, err)
	assert.Equal(t, "AAABBA\n", stdout)
}

func TestGen_Verbose(t *testing.T) {
	_, stderr, err := execute(t, "gen", "-v", "AB", "1", "3")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[verbose] patterns repeat after 2 combinations")
}

type failingProgress struct {
	adds int
}

func (o *failingProgress) Add(int) error {
	o.adds++
	return errors.New("terminal went away")
}

func (o *failingProgress) Finish() error {
	return errors.New("terminal still gone")
}

func TestWritePatterns_ProgressErrorsAreLogged(t *testing.T) {
	out := bytes.NewBuffer(nil)
	logs := bytes.NewBuffer(nil)
	bar := &failingProgress{}

	err := writePatterns(out, []string{"AA", "AB", "BA"}, " ", bar, log.New(logs, "", 0))
	require.NoError(t, err)

	assert.Equal(t, "AA AB BA\n", out.String())
	assert.Equal(t, 1, bar.adds)
	assert.Equal(t, "failed to update progress bar - terminal went away\n", logs.String())
}

func TestTable(t *testing.T) {
	stdout, _, err := execute(t, "table", "-a", "AB", "-l", "2", "-n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, []string{"INDEX", "OFFSET", "PATTERN"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "0x0", "AA"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1", "0x2", "AB"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"2", "0x4", "BA"}, strings.Fields(lines[3]))
}

func TestStream(t *testing.T) {
	stdout, _, err := execute(t, "stream", "-b", "12")
	require.NoError(t, err)
	assert.Equal(t, "AAAAAAABAAAC\n", stdout)

	stdout, _, err = execute(t, "stream", "-a", "01", "-l", "2", "-b", "6", "-n")
	require.NoError(t, err)
	assert.Equal(t, "000110", stdout)

	_, _, err = execute(t, "stream", "-a", "")
	assert.Error(t, err)
}

func TestOffset(t *testing.T) {
	stdout, _, err := execute(t, "offset", "-f", "AAAF")
	require.NoError(t, err)
	assert.Equal(t, "AAAF\n^^^^\n20:24 (4 bytes), pattern 5, symbol 0\n", stdout)

	stdout, _, err = execute(t, "offset", "-f", "ACAA")
	require.NoError(t, err)
	assert.Equal(t, "AAACAAAD\n  ^^^^\n  10:14 (4 bytes), pattern 2, symbol 2\n", stdout)
}

func TestOffset_Quiet(t *testing.T) {
	stdout, _, err := execute(t, "offset", "-q", "-f", "0x46414141", "-r")
	require.NoError(t, err)
	assert.Equal(t, "20:24 (4 bytes)\n", stdout)
}

func TestOffset_Retry(t *testing.T) {
	_, _, err := execute(t, "offset", "-q", "-f", "AAAF!!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find fragment")

	stdout, _, err := execute(t, "offset", "-q", "--retry", "-f", "AAAF!!")
	require.NoError(t, err)
	assert.Equal(t, "20:24 (4 bytes)\n", stdout)
}

func TestOffset_MissingFragment(t *testing.T) {
	_, _, err := execute(t, "offset")
	assert.EqualError(t, err, "please specify a fragment string")
}

func TestIndexAndAt(t *testing.T) {
	stdout, _, err := execute(t, "index", "AABA")
	require.NoError(t, err)
	assert.Equal(t, "26\n", stdout)

	stdout, _, err = execute(t, "at", "26")
	require.NoError(t, err)
	assert.Equal(t, "AABA\n", stdout)

	stdout, _, err = execute(t, "at", "-a", "01", "-l", "4", "0x7")
	require.NoError(t, err)
	assert.Equal(t, "0111\n", stdout)

	_, _, err = execute(t, "index", "-a", "AB", "ABC")
	assert.Error(t, err)
}
