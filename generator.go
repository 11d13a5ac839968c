package fuzzprop

import "errors"

// Construction-time errors. These are programmer mistakes (spec.md §7):
// an invalid range bound, an empty choose list, a negative fixed-length
// byte count. The combinator that detects one panics with it (never
// silently returns a zero Generator), wrapped in call-site context
// where there is any argument worth reporting - [Choose]'s empty-list
// case has none, so it panics with ErrEmptyChoice directly. A malformed
// combinator call is a bug at the call site, not a runtime condition a
// caller is expected to recover from. Mirrors pkg/slotcache/api.go's
// sentinel-error style: exported, checkable with [errors.Is], one line
// of "what" plus a doc comment of "why".
var (
	// ErrInvalidArgument indicates a generator constructor was given a
	// nonsensical argument (a non-positive range width, a negative
	// fixed byte count, ...).
	ErrInvalidArgument = errors.New("fuzzprop: invalid argument")

	// ErrEmptyChoice indicates [Choose] was given an empty generator
	// list; there is nothing to select from.
	ErrEmptyChoice = errors.New("fuzzprop: choose requires at least one generator")
)

// Generator produces deterministic values of type T from a [Source].
// Generators are plain values with no identity and no defined equality;
// they compose freely and never mutate any state except the Source
// currently threaded through them.
//
// The zero Generator is not usable; construct one with a primitive
// (Int, Bool, Bytes, ...) or a combinator (Map2, Choose, List, ...).
type Generator[T any] struct {
	run     func(*Source) T
	printer Printer[T]
}

// newGenerator builds a Generator from its draw function.
func newGenerator[T any](run func(*Source) T) Generator[T] {
	return Generator[T]{run: run}
}

// Draw runs g against s, producing one value and advancing s's cursor.
// Draw is how combinators in this package are implemented; user code
// normally never calls it directly - the Property Runner calls it once
// per generator in a test's generator list.
func (g Generator[T]) Draw(s *Source) T {
	return g.run(s)
}

// Const returns a generator that consumes no bytes and always yields v.
func Const[T any](v T) Generator[T] {
	return newGenerator(func(*Source) T {
		return v
	})
}
