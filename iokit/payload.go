package iokit

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// NewPayloadBuilder instantiates a new PayloadBuilder.
func NewPayloadBuilder() *PayloadBuilder {
	return &PayloadBuilder{
		buf: bytes.NewBuffer(nil),
	}
}

// PayloadBuilder lays out a payload made of literal data and marker
// patterns using the "builder pattern". The first error encountered
// stops all further writes and is reported by Build or BuildE.
//
// For methods that take endianness as an optional argument,
// the default is little endian. The default endianness can
// be overridden using SetEndianness.
type PayloadBuilder struct {
	buf     *bytes.Buffer
	bo      binary.ByteOrder
	markers []Marker
	err     error
}

// Marker records where a PatternGenerator's output was placed
// in a payload.
type Marker struct {
	Offset int
	Len    int
}

// SetEndianness sets the default endianness for the methods that take
// endianness as an optional argument.
func (o *PayloadBuilder) SetEndianness(order binary.ByteOrder) *PayloadBuilder {
	o.bo = order

	return o
}

func (o *PayloadBuilder) getEndianness(optOrder ...binary.ByteOrder) binary.ByteOrder {
	switch len(optOrder) {
	case 0:
		if o.bo == nil {
			return binary.LittleEndian
		}
		return o.bo
	case 1:
		return optOrder[0]
	default:
		panic("only one binary.ByteOrder may be specified")
	}
}

// Uint32 writes an unsigned 32-bit integer to the payload using
// optOrder, or the default endianness if optOrder is unspecified.
func (o *PayloadBuilder) Uint32(u uint32, optOrder ...binary.ByteOrder) *PayloadBuilder {
	b := make([]byte, 4)

	o.getEndianness(optOrder...).PutUint32(b, u)

	return o.Bytes(b)
}

// Uint64 writes an unsigned 64-bit integer to the payload using
// optOrder, or the default endianness if optOrder is unspecified.
func (o *PayloadBuilder) Uint64(u uint64, optOrder ...binary.ByteOrder) *PayloadBuilder {
	b := make([]byte, 8)

	o.getEndianness(optOrder...).PutUint64(b, u)

	return o.Bytes(b)
}

// PatternGenerator abstracts pattern string generators.
type PatternGenerator interface {
	// Pattern generates a pattern string as a []byte. Each byte
	// in the slice is a human-readable character.
	Pattern(numBytes int) ([]byte, error)
}

// Pattern writes the specified number of bytes from the PatternGenerator
// to the payload, and records a Marker for them.
func (o *PayloadBuilder) Pattern(generator PatternGenerator, numBytes int) *PayloadBuilder {
	if o.err != nil {
		return o
	}

	b, err := generator.Pattern(numBytes)
	if err != nil {
		o.err = fmt.Errorf("failed to generate %d pattern bytes at offset %d - %w",
			numBytes, o.buf.Len(), err)
		return o
	}

	o.markers = append(o.markers, Marker{
		Offset: o.buf.Len(),
		Len:    len(b),
	})

	return o.Bytes(b)
}

// Bytes writes the specified []byte to the payload.
func (o *PayloadBuilder) Bytes(b []byte) *PayloadBuilder {
	if o.err != nil {
		return o
	}

	o.buf.Write(b)

	return o
}

// Byte writes the specified byte to the payload.
func (o *PayloadBuilder) Byte(b byte) *PayloadBuilder {
	if o.err != nil {
		return o
	}

	o.buf.WriteByte(b)

	return o
}

// String writes the specified string to the payload.
func (o *PayloadBuilder) String(str string) *PayloadBuilder {
	if o.err != nil {
		return o
	}

	o.buf.WriteString(str)

	return o
}

// RepeatString writes str to the payload count times.
func (o *PayloadBuilder) RepeatString(str string, count int) *PayloadBuilder {
	if o.err != nil {
		return o
	}

	if count < 0 {
		o.err = fmt.Errorf("repeat count is negative (%d)", count)
		return o
	}

	o.buf.WriteString(strings.Repeat(str, count))

	return o
}

// Len returns the current payload length, i.e., the offset of the
// next byte to be written.
func (o *PayloadBuilder) Len() int {
	return o.buf.Len()
}

// Markers returns the location of each Pattern call's output, in the
// order they were written.
func (o *PayloadBuilder) Markers() []Marker {
	return o.markers
}

// BuildE returns the payload as a []byte, or the first error
// encountered while building it.
func (o *PayloadBuilder) BuildE() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}

	return o.buf.Bytes(), nil
}

// Build returns the payload as a []byte. It calls DefaultExitFn
// if an error occurred while building the payload.
func (o *PayloadBuilder) Build() []byte {
	b, err := o.BuildE()
	if err != nil {
		DefaultExitFn(fmt.Errorf("failed to build payload - %w", err))
	}

	return b
}
