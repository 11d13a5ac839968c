package fuzzprop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/fuzzprop"
)

type determinismCase struct {
	value int
	n     int
}

// Determinism (spec.md §8, item 1): running the same generator tree
// against the same buffer twice yields the same value and consumes the
// same number of bytes.
func Test_Determinism_SameBufferSameGenerator_SameResult(t *testing.T) {
	t.Parallel()

	g := fuzzprop.Map3(
		fuzzprop.Int32,
		fuzzprop.List(fuzzprop.Uint8),
		fuzzprop.Option(fuzzprop.Bool),
		func(a int32, xs []uint8, b *bool) determinismCase {
			n := 0
			if b != nil && *b {
				n = 1
			}

			return determinismCase{value: int(a) + len(xs), n: n}
		},
	)

	buf := []byte{
		0x01, 0x02, 0x03, 0x04,
		0x01, 0xAA, 0x01, 0xBB, 0x00,
		0x01, 0x01,
	}

	s1 := fuzzprop.NewSource(buf)
	r1 := g.Draw(s1)
	consumed1 := len(buf) - s1.Len()

	s2 := fuzzprop.NewSource(buf)
	r2 := g.Draw(s2)
	consumed2 := len(buf) - s2.Len()

	require.Equal(t, r1, r2)
	require.Equal(t, consumed1, consumed2)
}

func Test_Bool_LowBitPolicy(t *testing.T) {
	t.Parallel()

	require.True(t, fuzzprop.Bool.Draw(fuzzprop.NewSource([]byte{0x01})))
	require.True(t, fuzzprop.Bool.Draw(fuzzprop.NewSource([]byte{0x03})))
	require.False(t, fuzzprop.Bool.Draw(fuzzprop.NewSource([]byte{0x00})))
	require.False(t, fuzzprop.Bool.Draw(fuzzprop.NewSource([]byte{0xFE})))
}

// Out-of-input maps to OutcomeInvalid, never OutcomeFail, never OutcomePass (spec.md §8, item
// 5). The Source-level half of the contract - a short read panics
// rather than returning a value - is asserted here; the full mapping to
// the OutcomeInvalid outcome is exercised end to end in runner_test.go, which
// has access to the unexported runProperty.
func Test_OutOfInput_Source_PanicsRatherThanReturning(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		fuzzprop.NewSource([]byte{0x01, 0x02}).ReadU32()
	})
}
