package fuzzprop

import "io"

// MaxListLength bounds [List] and [List1]: generation stops once this
// many elements have been produced, regardless of the continuation
// byte, so a pathological buffer (every continuation byte set) cannot
// make a single test iteration run unbounded. spec.md §9 leaves this
// implementation-defined ("a few thousand"); this is deliberately
// generous for realistic properties while keeping worst-case iteration
// time bounded.
const MaxListLength = 4096

// Map1 runs ga, then applies f to its result. Map1 through Map5 are the
// fixed-arity encoding of spec.md's `map(gens, f)`: Go has no ergonomic
// way to express a heterogeneous generator list matched structurally to
// an arbitrary-arity function, so - per Design Notes option (a)/(c) -
// this package offers one function per arity instead. Evaluation order
// is left to right and is part of the contract: fuzzer seeds depend on
// the order generators consume bytes.
func Map1[A, R any](ga Generator[A], f func(A) R) Generator[R] {
	return newGenerator(func(s *Source) R {
		a := ga.Draw(s)
		return f(a)
	})
}

// Map2 runs ga then gb, left to right, and applies f to both results.
func Map2[A, B, R any](ga Generator[A], gb Generator[B], f func(A, B) R) Generator[R] {
	return newGenerator(func(s *Source) R {
		a := ga.Draw(s)
		b := gb.Draw(s)

		return f(a, b)
	})
}

// Map3 runs ga, gb, gc left to right and applies f to all three results.
func Map3[A, B, C, R any](ga Generator[A], gb Generator[B], gc Generator[C], f func(A, B, C) R) Generator[R] {
	return newGenerator(func(s *Source) R {
		a := ga.Draw(s)
		b := gb.Draw(s)
		c := gc.Draw(s)

		return f(a, b, c)
	})
}

// Map4 runs ga, gb, gc, gd left to right and applies f to all results.
func Map4[A, B, C, D, R any](
	ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], f func(A, B, C, D) R,
) Generator[R] {
	return newGenerator(func(s *Source) R {
		a := ga.Draw(s)
		b := gb.Draw(s)
		c := gc.Draw(s)
		d := gd.Draw(s)

		return f(a, b, c, d)
	})
}

// Map5 runs ga..ge left to right and applies f to all results.
func Map5[A, B, C, D, E, R any](
	ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], f func(A, B, C, D, E) R,
) Generator[R] {
	return newGenerator(func(s *Source) R {
		a := ga.Draw(s)
		b := gb.Draw(s)
		c := gc.Draw(s)
		d := gd.Draw(s)
		e := ge.Draw(s)

		return f(a, b, c, d, e)
	})
}

// Choose reads one byte b from the source and runs gs[b % len(gs)]. gs
// must be non-empty; an empty gs is a construction-time [ErrEmptyChoice].
func Choose[T any](gs ...Generator[T]) Generator[T] {
	if len(gs) == 0 {
		panic(ErrEmptyChoice)
	}

	return newGenerator(func(s *Source) T {
		b := s.ReadU8()
		return gs[int(b)%len(gs)].Draw(s)
	})
}

// Option reads one selector byte; on an even byte it yields nil (none),
// otherwise it runs g and yields a pointer to the result (some). A
// pointer is used, rather than a bool/value pair, so "none" and "the
// zero value of T" remain distinguishable in failure reports - see
// [PrintOption].
func Option[T any](g Generator[T]) Generator[*T] {
	return withDefaultPrinter(newGenerator(func(s *Source) *T {
		if s.ReadU8()&1 == 0 {
			return nil
		}

		v := g.Draw(s)

		return &v
	}), PrintOption(elemPrinter(g)))
}

// Pair runs ga then gb, left to right, and yields both results as a
// two-element struct.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Generator of [Pair] from ga and gb.
func PairOf[A, B any](ga Generator[A], gb Generator[B]) Generator[Pair[A, B]] {
	return Map2(ga, gb, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

// Either is the two-variant sum produced by [ResultOf]: exactly one of
// Ok or Err is meaningful, selected by IsOk. Named Either rather than
// Result to keep it distinct from [Result], the outcome.go type
// carrying a test iteration's Pass/Invalid/Fail/Crash classification.
type Either[A, B any] struct {
	IsOk bool
	Ok   A
	Err  B
}

// ResultOf is the Go spelling of spec.md's `result(ga, gb)`: it reads
// one selector byte choosing the ok variant (runs ga) or the error
// variant (runs gb).
func ResultOf[A, B any](ga Generator[A], gb Generator[B]) Generator[Either[A, B]] {
	return newGenerator(func(s *Source) Either[A, B] {
		if s.ReadU8()&1 == 1 {
			return Either[A, B]{IsOk: true, Ok: ga.Draw(s)}
		}

		return Either[A, B]{IsOk: false, Err: gb.Draw(s)}
	})
}

// List repeatedly reads a continuation byte; while its low bit is 1, it
// runs g and appends the result, stopping on the first byte with a
// clear low bit (or once [MaxListLength] elements have been produced).
// The empty list is reachable whenever the very first continuation byte
// has a clear low bit.
func List[T any](g Generator[T]) Generator[[]T] {
	return withDefaultPrinter(newGenerator(func(s *Source) []T {
		var out []T

		for len(out) < MaxListLength {
			if s.ReadU8()&1 == 0 {
				break
			}

			out = append(out, g.Draw(s))
		}

		return out
	}), PrintList(elemPrinter(g)))
}

// List1 behaves like [List], except one element is always produced
// before the continuation loop begins, guaranteeing a non-empty result
// (subject to the buffer actually containing enough bytes - on
// exhaustion the Source signals OutcomeInvalid exactly as any other read
// would).
func List1[T any](g Generator[T]) Generator[[]T] {
	return withDefaultPrinter(newGenerator(func(s *Source) []T {
		out := []T{g.Draw(s)}

		for len(out) < MaxListLength {
			if s.ReadU8()&1 == 0 {
				break
			}

			out = append(out, g.Draw(s))
		}

		return out
	}), PrintList(elemPrinter(g)))
}

// ConcatGenList runs each generator in gs in order, joining the results
// with a separator drawn from sepG between every adjacent pair, and
// returns the concatenation. A single trailing value needs no
// separator; an empty gs yields "".
func ConcatGenList(sepG Generator[string], gs ...Generator[string]) Generator[string] {
	return newGenerator(func(s *Source) string {
		var out string

		for i, g := range gs {
			if i > 0 {
				out += sepG.Draw(s)
			}

			out += g.Draw(s)
		}

		return out
	})
}

// Unlazy forces thunk on first use and caches the resulting generator,
// delegating to it on every subsequent draw. It exists to break
// construction-time cycles when a generator must reference itself -
// without it, building a recursive generator would recurse infinitely
// at construction time rather than at draw time.
func Unlazy[T any](thunk func() Generator[T]) Generator[T] {
	var (
		cached Generator[T]
		forced bool
	)

	return newGenerator(func(s *Source) T {
		if !forced {
			cached = thunk()
			forced = true
		}

		return cached.Draw(s)
	})
}

// Fix constructs the fixed point of f: a generator g such that g behaves
// identically to f(g). This is the self-contained alternative to the
// [Unlazy] pattern for defining recursive generators - f receives a
// generator that, once Fix returns, is wired back to g itself.
func Fix[T any](f func(Generator[T]) Generator[T]) Generator[T] {
	var self Generator[T]

	self = Unlazy(func() Generator[T] {
		return f(self)
	})

	return self
}

// DynamicBind runs g to obtain a value v, then runs k(v) - a generator
// chosen based on v - against the remainder of the source. This is the
// monadic bind of the generator algebra.
//
// dynamic_bind defeats static analysis of the generator tree: nothing
// about the shape of the second generator is visible until the first
// has already consumed bytes. Prefer [Map1]/[Map2]/... wherever the
// second generator's shape does not actually depend on the first
// generator's value.
func DynamicBind[A, B any](g Generator[A], k func(A) Generator[B]) Generator[B] {
	return newGenerator(func(s *Source) B {
		a := g.Draw(s)
		return k(a).Draw(s)
	})
}

// elemPrinter returns g's attached printer if one was set via
// WithPrinter/withDefaultPrinter, otherwise a generic fallback that
// formats with %#v - used by List/Option to build a best-effort printer
// for their element type without requiring every element generator to
// carry one.
func elemPrinter[T any](g Generator[T]) Printer[T] {
	if g.printer != nil {
		return g.printer
	}

	return func(w io.Writer, v T) {
		Pp(w, "%#v", v)
	}
}
