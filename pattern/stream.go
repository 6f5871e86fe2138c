package pattern

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
)

// Stream generates a marker byte stream by concatenating consecutive
// patterns. Subsequent calls resume the stream where the previous
// call stopped.
//
// Stream implements iokit.PatternGenerator.
type Stream struct {
	// Alphabet is the symbol set. UpperLatin is used if empty.
	Alphabet string

	// PatternLength is the length of each pattern in symbols.
	// A length of 4 is used if it is zero.
	PatternLength int

	// OptLogger logs each generated chunk if specified.
	OptLogger *log.Logger

	odometer *Odometer
	buf      *bytes.Buffer
	numCalls int
}

const defaultStreamPatternLength = 4

// Pattern returns the next numBytes bytes of the stream.
//
// When an alphabet contains multi-byte symbols, a chunk may end in
// the middle of a symbol's UTF-8 encoding. The remaining bytes begin
// the next chunk.
func (o *Stream) Pattern(numBytes int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)

	err := o.WriteToN(buf, numBytes)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteToNOrExit calls WriteToN and calls DefaultExitFn if an error occurs.
func (o *Stream) WriteToNOrExit(w io.Writer, n int) {
	err := o.WriteToN(w, n)
	if err != nil {
		DefaultExitFn(fmt.Errorf("pattern.stream: failed to write pattern string number %d of size %d - %w",
			o.numCalls, n, err))
	}
}

// WriteToN writes the next n bytes of the stream to w.
func (o *Stream) WriteToN(w io.Writer, n int) error {
	if n <= 0 {
		return errors.New("n is less than or equal to zero")
	}

	err := o.init()
	if err != nil {
		return err
	}

	for o.buf.Len() < n {
		o.buf.WriteString(o.odometer.String())
		o.odometer.Increment()
	}

	if o.OptLogger != nil {
		o.OptLogger.Println("pattern string "+
			strconv.Itoa(o.numCalls)+":",
			string(o.buf.Bytes()[0:n]))
	}

	_, err = io.CopyN(w, o.buf, int64(n))
	if err != nil {
		return err
	}

	o.numCalls++

	return nil
}

// Odometer returns the counter driving the stream, or nil if nothing
// has been generated yet.
func (o *Stream) Odometer() *Odometer {
	return o.odometer
}

func (o *Stream) init() error {
	if o.odometer != nil {
		return nil
	}

	alphabet := o.Alphabet
	if alphabet == "" {
		alphabet = UpperLatin
	}

	patternLength := o.PatternLength
	if patternLength == 0 {
		patternLength = defaultStreamPatternLength
	}

	odometer, err := NewOdometer(alphabet, patternLength)
	if err != nil {
		return err
	}

	o.odometer = odometer
	o.buf = bytes.NewBuffer(nil)

	return nil
}
