package fuzzprop_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/fuzzprop"
)

func Test_Source_ReadsLittleEndian(t *testing.T) {
	t.Parallel()

	s := fuzzprop.NewSource([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})

	require.Equal(t, uint16(0x0201), s.ReadU16())
	require.Equal(t, uint32(0x06050403), s.ReadU32())
	require.Equal(t, uint8(0x07), s.ReadU8())
	require.True(t, s.Exhausted() == false)
}

func Test_Source_ReadU64_LittleEndian(t *testing.T) {
	t.Parallel()

	s := fuzzprop.NewSource([]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01})
	require.Equal(t, uint64(0x0102030405060708), s.ReadU64())
	require.True(t, s.Exhausted())
}

func Test_Source_ReadDouble_RoundTrips(t *testing.T) {
	t.Parallel()

	var buf [8]byte

	want := math.Float64bits(3.5)
	for i := 0; i < 8; i++ {
		buf[i] = byte(want >> (8 * i))
	}

	s := fuzzprop.NewSource(buf[:])
	require.InDelta(t, 3.5, s.ReadDouble(), 0)
}

func Test_Source_ReadDouble_DoesNotFilterNaN(t *testing.T) {
	t.Parallel()

	nanBits := math.Float64bits(math.NaN())

	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(nanBits >> (8 * i))
	}

	s := fuzzprop.NewSource(buf[:])
	require.True(t, math.IsNaN(s.ReadDouble()))
}

func Test_Source_ReadBytesVar_ConsumesLengthPrefixThenPayload(t *testing.T) {
	t.Parallel()

	s := fuzzprop.NewSource([]byte{0x03, 0xAA, 0xBB, 0xCC, 0xDD})
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, s.ReadBytesVar())
	require.Equal(t, 1, s.Len())
}

func Test_Source_ReadBytesFixed(t *testing.T) {
	t.Parallel()

	s := fuzzprop.NewSource([]byte{0x01, 0x02, 0x03})
	require.Equal(t, []byte{0x01, 0x02}, s.ReadBytesFixed(2))
	require.Equal(t, 1, s.Len())
}

func Test_Source_ReadPastEnd_PanicsOutOfInput(t *testing.T) {
	t.Parallel()

	s := fuzzprop.NewSource([]byte{0x01})

	require.Panics(t, func() {
		s.ReadU32()
	})
}
