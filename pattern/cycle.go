package pattern

import (
	"fmt"
	"math/bits"
	"strings"
)

// CycleLen returns base^patternLength, the number of distinct counter
// values before the Odometer wraps. It returns false if either
// argument is less than one, or if the result overflows a uint64.
func CycleLen(base int, patternLength int) (uint64, bool) {
	if base <= 0 || patternLength <= 0 {
		return 0, false
	}

	n := uint64(1)

	for i := 0; i < patternLength; i++ {
		hi, lo := bits.Mul64(n, uint64(base))
		if hi != 0 {
			return 0, false
		}

		n = lo
	}

	return n, true
}

// At returns the k-th pattern (zero-indexed) without generating the
// patterns before it. k wraps modulo the cycle length, so At returns
// the same value as Generate(alphabet, k+1, patternLength)[k].
func At(alphabet string, k uint64, patternLength int) (string, error) {
	if len(alphabet) == 0 {
		return "", ErrEmptyAlphabet
	}

	err := validateLength(patternLength)
	if err != nil {
		return "", err
	}

	symbols := NewAlphabet(alphabet)
	base := uint64(symbols.Base())

	cycle, ok := CycleLen(symbols.Base(), patternLength)
	if ok {
		k %= cycle
	}

	digits := make([]int, patternLength)

	for i := patternLength - 1; i >= 0 && k > 0; i-- {
		digits[i] = int(k % base)
		k /= base
	}

	var buf strings.Builder

	return symbols.render(digits, &buf), nil
}

// Index returns the counter value of p, i.e., the inverse of At.
// The pattern length is the number of symbols in p, split the way
// NewAlphabet splits the alphabet. If the alphabet
// contains duplicate symbols, a symbol's first position is used.
func Index(alphabet string, p string) (uint64, error) {
	if len(alphabet) == 0 {
		return 0, ErrEmptyAlphabet
	}

	symbols := NewAlphabet(alphabet)
	digits := symbols.Split(p)

	err := validateLength(len(digits))
	if err != nil {
		return 0, err
	}

	base := uint64(symbols.Base())

	var k uint64

	for i, symbol := range digits {
		d := symbols.IndexOf(symbol)
		if d < 0 {
			return 0, fmt.Errorf("%w (%q at position %d)", ErrUnknownSymbol, symbol, i)
		}

		hi, lo := bits.Mul64(k, base)
		if hi != 0 {
			return 0, ErrIndexOverflow
		}

		sum, carry := bits.Add64(lo, uint64(d), 0)
		if carry != 0 {
			return 0, ErrIndexOverflow
		}

		k = sum
	}

	return k, nil
}
