package pattern

import (
	"strings"
	"unicode/utf8"
)

const (
	// UpperLatin is the default alphabet: the uppercase Latin letters.
	UpperLatin = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// LowerLatin is the lowercase Latin letters.
	LowerLatin = "abcdefghijklmnopqrstuvwxyz"

	// Digits is the decimal digits.
	Digits = "0123456789"

	// Hex is the uppercase hexadecimal digits.
	Hex = "0123456789ABCDEF"
)

// Alphabet is an ordered sequence of symbols. A symbol's position in
// the Alphabet is its digit value.
//
// Symbols do not need to be unique. An Alphabet containing duplicates
// renders identical strings for different counter values.
type Alphabet struct {
	symbols  []string
	byteWise bool
}

// NewAlphabet splits str into symbols. If str is valid UTF-8, each
// rune is one symbol. Otherwise each byte is one symbol, so raw byte
// alphabets render exactly the bytes they were made of.
func NewAlphabet(str string) Alphabet {
	alphabet := Alphabet{
		byteWise: !utf8.ValidString(str),
	}

	alphabet.symbols = alphabet.Split(str)

	return alphabet
}

// Split splits str into symbols the same way the Alphabet's own
// string was split.
func (o Alphabet) Split(str string) []string {
	if o.byteWise {
		symbols := make([]string, len(str))
		for i := range symbols {
			symbols[i] = str[i : i+1]
		}

		return symbols
	}

	symbols := make([]string, 0, utf8.RuneCountInString(str))
	for _, r := range str {
		symbols = append(symbols, string(r))
	}

	return symbols
}

// Base returns the number of symbols, i.e., the radix of the
// counting system.
func (o Alphabet) Base() int {
	return len(o.symbols)
}

// Symbols returns the symbols in digit order.
func (o Alphabet) Symbols() []string {
	return o.symbols
}

// IndexOf returns the digit value of the first occurrence of
// symbol, or -1 if the symbol is not part of the Alphabet.
func (o Alphabet) IndexOf(symbol string) int {
	for i, s := range o.symbols {
		if s == symbol {
			return i
		}
	}

	return -1
}

// Contains reports whether symbol is part of the Alphabet.
func (o Alphabet) Contains(symbol string) bool {
	return o.IndexOf(symbol) >= 0
}

// render maps each digit through the Alphabet, most-significant
// digit first.
func (o Alphabet) render(digits []int, buf *strings.Builder) string {
	buf.Reset()

	for _, d := range digits {
		buf.WriteString(o.symbols[d])
	}

	return buf.String()
}

func (o Alphabet) String() string {
	return strings.Join(o.symbols, "")
}
