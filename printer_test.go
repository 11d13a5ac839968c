package fuzzprop_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/fuzzprop"
)

type point struct {
	X, Y int
}

func recoverOutcomeMessage(t *testing.T, fn func()) string {
	t.Helper()

	var captured string

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)

			sig, ok := r.(interface{ Error() string })
			require.True(t, ok)

			captured = sig.Error()
		}()

		fn()
	}()

	return captured
}

// Printer priority (spec.md §8, item 6): a printer registered via
// WithPrinter beats the %#v fallback when CheckEq only has a bare value
// to render, with no static knowledge of the generator that produced it.
func Test_CheckEq_PrinterPriority_RegisteredBeatsFallback(t *testing.T) {
	pp := func(w io.Writer, p point) {
		fuzzprop.Pp(w, "(%d,%d)", p.X, p.Y)
	}

	g := fuzzprop.WithPrinter(pp, fuzzprop.Const(point{}))

	got := recoverOutcomeMessage(t, func() {
		fuzzprop.CheckEq(g.Draw(fuzzprop.NewSource(nil)), point{X: 1, Y: 2})
	})

	require.Contains(t, got, "(0,0)")
	require.Contains(t, got, "(1,2)")
}

// An explicit WithPp option takes priority over both the registered
// printer and the fallback (spec.md §8, item 6).
func Test_CheckEq_PrinterPriority_ExplicitWithPpWins(t *testing.T) {
	registered := func(w io.Writer, p point) {
		fuzzprop.Pp(w, "(%d,%d)", p.X, p.Y)
	}
	fuzzprop.WithPrinter(registered, fuzzprop.Const(point{}))

	explicit := func(w io.Writer, p point) {
		fuzzprop.Pp(w, "explicit<%d|%d>", p.X, p.Y)
	}

	got := recoverOutcomeMessage(t, func() {
		fuzzprop.CheckEq(point{X: 1}, point{X: 2}, fuzzprop.WithPp[point](explicit))
	})

	require.Contains(t, got, "explicit<1|0>")
	require.Contains(t, got, "explicit<2|0>")
	require.NotContains(t, got, "(1,0)")
}

func Test_PrintList_BracketsCommaSeparatedElements(t *testing.T) {
	t.Parallel()

	printer := fuzzprop.PrintList[int](func(w io.Writer, v int) {
		fuzzprop.Pp(w, "%d", v)
	})

	var buf bytes.Buffer
	printer(&buf, []int{1, 2, 3})

	require.Equal(t, "[1, 2, 3]", buf.String())
}

func Test_PrintOption_NoneAndSome(t *testing.T) {
	t.Parallel()

	printer := fuzzprop.PrintOption[int](func(w io.Writer, v int) {
		fuzzprop.Pp(w, "%d", v)
	})

	var none bytes.Buffer
	printer(&none, nil)
	require.Equal(t, "none", none.String())

	var some bytes.Buffer
	v := 9
	printer(&some, &v)
	require.Equal(t, "some(9)", some.String())
}
