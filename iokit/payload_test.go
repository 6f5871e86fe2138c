package iokit_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/stephen-fox/cyclic/iokit"
	"gitlab.com/stephen-fox/cyclic/pattern"
)

var _ iokit.PatternGenerator = (*pattern.Stream)(nil)

type failingGenerator struct{}

func (failingGenerator) Pattern(int) ([]byte, error) {
	return nil, errors.New("out of patterns")
}

func TestPayloadBuilder_Markers(t *testing.T) {
	markers := &pattern.Stream{Alphabet: "01", PatternLength: 2}

	builder := iokit.NewPayloadBuilder().
		String("xx").
		Pattern(markers, 4).
		Byte('|').
		Pattern(markers, 4)

	payload, err := builder.BuildE()
	require.NoError(t, err)

	assert.Equal(t, "xx0001|1011", string(payload))
	assert.Equal(t, []iokit.Marker{{Offset: 2, Len: 4}, {Offset: 7, Len: 4}}, builder.Markers())
	assert.Equal(t, 11, builder.Len())
}

func TestPayloadBuilder_Endianness(t *testing.T) {
	payload, err := iokit.NewPayloadBuilder().
		SetEndianness(binary.BigEndian).
		Uint32(0x41424344).
		Uint32(0x41424344, binary.LittleEndian).
		BuildE()
	require.NoError(t, err)

	assert.Equal(t, "ABCDDCBA", string(payload))
}

func TestPayloadBuilder_FirstErrorWins(t *testing.T) {
	builder := iokit.NewPayloadBuilder().
		String("before").
		Pattern(failingGenerator{}, 8).
		RepeatString("A", -1).
		String("after")

	_, err := builder.BuildE()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate 8 pattern bytes at offset 6 - out of patterns")
	assert.Equal(t, 6, builder.Len())
	assert.Empty(t, builder.Markers())
}

func TestPayloadBuilder_BuildCallsExitFn(t *testing.T) {
	original := iokit.DefaultExitFn
	defer func() {
		iokit.DefaultExitFn = original
	}()

	var exitErr error
	iokit.DefaultExitFn = func(err error) {
		exitErr = err
	}

	iokit.NewPayloadBuilder().Pattern(&pattern.Stream{PatternLength: -4}, 4).Build()

	require.Error(t, exitErr)
	assert.ErrorIs(t, exitErr, pattern.ErrNonPositivePatternLength)
}
