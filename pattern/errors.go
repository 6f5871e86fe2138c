package pattern

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAlphabet means the alphabet has zero symbols.
	ErrEmptyAlphabet = errors.New("input alphabet cannot be empty")

	// ErrNonPositivePatternCount means the requested number of
	// patterns is less than or equal to zero.
	ErrNonPositivePatternCount = errors.New("number of patterns must be a positive integer")

	// ErrNonPositivePatternLength means the requested pattern length
	// is less than or equal to zero.
	ErrNonPositivePatternLength = errors.New("pattern length must be a positive integer")

	// ErrUnknownSymbol means a pattern contains a symbol that is not
	// part of the alphabet.
	ErrUnknownSymbol = errors.New("symbol is not part of the alphabet")

	// ErrIndexOverflow means a pattern's counter value does not fit
	// in a uint64.
	ErrIndexOverflow = errors.New("pattern index overflows uint64")

	// ErrFragmentNotFound means a fragment does not appear in
	// a pattern stream.
	ErrFragmentNotFound = errors.New("fragment not found in pattern stream")
)

// Validate checks the arguments of Generate in the order that
// Generate checks them, returning the first failure.
//
// The returned error wraps one of ErrEmptyAlphabet,
// ErrNonPositivePatternCount, or ErrNonPositivePatternLength.
func Validate(alphabet string, numPatterns int, patternLength int) error {
	if len(alphabet) == 0 {
		return ErrEmptyAlphabet
	}

	if numPatterns <= 0 {
		return fmt.Errorf("%w (got %d)", ErrNonPositivePatternCount, numPatterns)
	}

	return validateLength(patternLength)
}

func validateLength(patternLength int) error {
	if patternLength <= 0 {
		return fmt.Errorf("%w (got %d)", ErrNonPositivePatternLength, patternLength)
	}

	return nil
}
