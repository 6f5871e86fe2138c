package pattern

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Location describes where a fragment was found in a pattern stream.
type Location struct {
	// Offset is the byte offset of the fragment's first byte.
	Offset int

	// End is the byte offset just past the fragment's last byte.
	End int

	// PatternIndex is the zero-indexed number of the pattern that
	// the fragment starts in.
	PatternIndex int

	// SymbolOffset is the fragment's starting position, in symbols,
	// inside the pattern at PatternIndex.
	SymbolOffset int
}

// Len returns the fragment length.
func (o Location) Len() int {
	return o.End - o.Offset
}

func (o Location) String() string {
	return fmt.Sprintf("%d:%d (%d bytes)", o.Offset, o.End, o.Len())
}

// Locate finds the first occurrence of fragment in stream, where
// stream was produced by a Stream with the given pattern length.
// Offsets in symbols are computed by counting UTF-8 runes, so they
// are correct for multi-byte alphabets as well. For raw byte alphabets
// (see NewAlphabet), rely on Offset and End.
func Locate(stream []byte, fragment []byte, patternLength int) (Location, error) {
	err := validateLength(patternLength)
	if err != nil {
		return Location{}, err
	}

	if len(fragment) == 0 {
		return Location{}, fmt.Errorf("%w (fragment is empty)", ErrFragmentNotFound)
	}

	index := bytes.Index(stream, fragment)
	if index < 0 {
		return Location{}, ErrFragmentNotFound
	}

	symbols := utf8.RuneCount(stream[0:index])

	return Location{
		Offset:       index,
		End:          index + len(fragment),
		PatternIndex: symbols / patternLength,
		SymbolOffset: symbols % patternLength,
	}, nil
}
