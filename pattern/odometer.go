package pattern

import (
	"strings"
)

// Odometer is a mixed-radix counter whose digits are rendered through
// an Alphabet. The most-significant digit is at index 0.
//
// An Odometer is not safe for concurrent use. Each goroutine should
// create its own.
type Odometer struct {
	alphabet Alphabet
	digits   []int
	buf      strings.Builder
	position uint64
	wraps    uint64
}

// NewOdometer creates an Odometer set to the first pattern (alphabet[0]
// repeated patternLength times).
//
// It returns ErrEmptyAlphabet or ErrNonPositivePatternLength if
// the arguments are invalid.
func NewOdometer(alphabet string, patternLength int) (*Odometer, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}

	err := validateLength(patternLength)
	if err != nil {
		return nil, err
	}

	return newOdometer(NewAlphabet(alphabet), patternLength), nil
}

func newOdometer(alphabet Alphabet, patternLength int) *Odometer {
	return &Odometer{
		alphabet: alphabet,
		digits:   make([]int, patternLength),
	}
}

// String renders the current pattern.
func (o *Odometer) String() string {
	return o.alphabet.render(o.digits, &o.buf)
}

// Increment advances the counter by one. It returns true if the
// carry propagated out of the most-significant digit, in which case
// every digit is zero again and the cycle restarts.
func (o *Odometer) Increment() bool {
	o.position++

	base := o.alphabet.Base()

	for i := len(o.digits) - 1; i >= 0; i-- {
		o.digits[i]++

		if o.digits[i] < base {
			return false
		}

		o.digits[i] = 0
	}

	o.wraps++

	return true
}

// Position returns the number of times Increment was called since
// the Odometer was created or last Reset.
func (o *Odometer) Position() uint64 {
	return o.position
}

// Wraps returns the number of completed cycles, i.e., how many
// times Increment returned true.
func (o *Odometer) Wraps() uint64 {
	return o.wraps
}

// Len returns the pattern length in symbols.
func (o *Odometer) Len() int {
	return len(o.digits)
}

// Reset sets every digit back to zero.
func (o *Odometer) Reset() {
	for i := range o.digits {
		o.digits[i] = 0
	}

	o.position = 0
	o.wraps = 0
}
