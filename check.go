package fuzzprop

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Fail unwinds the current property invocation with a Fail outcome and
// message. It is the lowest-level failure primitive; [Check], [CheckEq],
// and [FailF] are all built on it.
func Fail(message string) {
	panic(outcomeSignal{outcome: OutcomeFail, message: message})
}

// FailF is [Fail] with Printf-style formatting.
func FailF(format string, args ...any) {
	Fail(fmt.Sprintf(format, args...))
}

// Check fails the property with message if ok is false.
func Check(ok bool, message string) {
	if !ok {
		Fail(message)
	}
}

// checkEqConfig accumulates the optional knobs to [CheckEq].
type checkEqConfig[T any] struct {
	pp  Printer[T]
	cmp func(a, b T) int
	eq  func(a, b T) bool
}

// CheckEqOption configures a single [CheckEq] call.
type CheckEqOption[T any] func(*checkEqConfig[T])

// WithEq supplies an explicit equality function to CheckEq, taking
// priority over everything else.
func WithEq[T any](eq func(a, b T) bool) CheckEqOption[T] {
	return func(c *checkEqConfig[T]) { c.eq = eq }
}

// WithCmp supplies a three-way comparator to CheckEq, used for equality
// by checking for a zero result. Only consulted when no [WithEq] option
// is given.
func WithCmp[T any](cmpFn func(a, b T) int) CheckEqOption[T] {
	return func(c *checkEqConfig[T]) { c.cmp = cmpFn }
}

// WithPp supplies an explicit printer CheckEq uses to render both
// values on failure, taking priority over any printer registered via
// [WithPrinter] and over the built-in fallback.
func WithPp[T any](pp Printer[T]) CheckEqOption[T] {
	return func(c *checkEqConfig[T]) { c.pp = pp }
}

// CheckEq fails the property if x and y are not equal, printing both
// values in the failure message.
//
// Equality is resolved in priority order: an [WithEq] function if
// supplied, else a [WithCmp] comparator reduced to equality via a
// zero-comparison, else a structural default ([cmp.Equal], falling back
// to [reflect.DeepEqual] for types go-cmp refuses to compare, such as
// those with unexported fields and no configured option). Under the
// default, NaN != NaN, matching both go-cmp's and Go's own `==`
// behavior for floats - see SPEC_FULL.md's open-question decisions.
//
// The rendered values use the same priority: an explicit [WithPp]
// printer, then the printer most recently registered for type T by any
// [WithPrinter] call, then a best-effort %#v fallback. The lookup is by
// type only: the generator that produced x or y is not consulted.
func CheckEq[T any](x, y T, opts ...CheckEqOption[T]) {
	var cfg checkEqConfig[T]
	for _, o := range opts {
		o(&cfg)
	}

	equal := resolveEquality(cfg, x, y)
	if equal {
		return
	}

	render := func(v T) string {
		if cfg.pp != nil {
			var b fmtBuffer
			cfg.pp(&b, v)

			return b.String()
		}

		return renderValue(any(v))
	}

	FailF("check_eq failed: %s != %s", render(x), render(y))
}

func resolveEquality[T any](cfg checkEqConfig[T], x, y T) bool {
	if cfg.eq != nil {
		return cfg.eq(x, y)
	}

	if cfg.cmp != nil {
		return cfg.cmp(x, y) == 0
	}

	return defaultEqual(x, y)
}

// defaultEqual is the structural/polymorphic default equality CheckEq
// falls back to. cmp.Equal panics on some type shapes (unexported
// fields without a configured cmp.Option, cyclic pointers without
// cmp.Options); this recovers from that and falls back further to
// reflect.DeepEqual, which accepts any comparable shape without an
// explicit option at the cost of a less precise NaN/pointer-cycle
// story. This mirrors the narrow panic/recover boundary elsewhere in
// this package (see cache_binary.go's Lookup in the teacher): the
// recover here is not part of the outcome protocol, it is purely a
// library-internal compatibility shim around go-cmp.
func defaultEqual[T any](x, y T) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = reflect.DeepEqual(x, y)
		}
	}()

	return cmp.Equal(x, y)
}

// Guard fails the current test iteration as OutcomeInvalid (not a crash) when
// cond is false - the canonical way to discard a generated input that
// does not satisfy a precondition the property needs.
func Guard(cond bool) {
	if !cond {
		panic(outcomeSignal{outcome: OutcomeInvalid, message: "guard failed"})
	}
}

// BadTest unconditionally discards the current test iteration as
// OutcomeInvalid. Useful when a property determines, after some work, that the
// generated input cannot be evaluated meaningfully.
func BadTest(reason string) {
	panic(outcomeSignal{outcome: OutcomeInvalid, message: reason})
}

// Nonetheless unwraps an optional value produced by [Option], discarding
// the test iteration as OutcomeInvalid when v is nil ("none"), otherwise
// returning the pointed-to value.
func Nonetheless[T any](v *T) T {
	if v == nil {
		panic(outcomeSignal{outcome: OutcomeInvalid, message: "nonetheless: none"})
	}

	return *v
}
