package fuzzprop

import (
	"fmt"
	"io"
	"reflect"
	"sync"
)

// Printer renders a value of T to w. Printers are plain values; they
// may be attached to a generator with [WithPrinter], which produces a
// new generator whose associated default printer is the attached one.
// Attachment is purely decorative - it never changes the values a
// generator produces.
type Printer[T any] func(w io.Writer, v T)

// Pp is a variadic, format-directive-based printer helper, forwarding
// to [fmt.Fprintf]. It exists so hand-written [Printer] functions read
// like ordinary Printf calls instead of manual io.Writer plumbing.
func Pp(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// printerRegistry is the process-wide, best-effort association between
// a runtime type and the printer most recently attached to a generator
// of that type via [WithPrinter]. It backs priority (2) of CheckEq's
// printer resolution (spec.md §4.3): "printer registered via
// with_printer on the originating generator". Kept as a field-free side
// table only because Go values produced by a generator carry no back
// pointer to the generator that produced them; the generator itself
// still carries its own printer as a local field for direct use (see
// Generator.printer), which is consulted first wherever the originating
// generator is statically known.
type printerRegistry struct {
	mu       sync.RWMutex
	byType   map[reflect.Type]func(io.Writer, any)
}

var globalPrinters = &printerRegistry{byType: make(map[reflect.Type]func(io.Writer, any))}

func (r *printerRegistry) register(t reflect.Type, fn func(io.Writer, any)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byType[t] = fn
}

func (r *printerRegistry) lookup(t reflect.Type) (func(io.Writer, any), bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.byType[t]
	return fn, ok
}

// WithPrinter returns a generator producing the same values as g, whose
// default printer for failure reporting is p. p is also registered
// process-wide for type T, so [CheckEq] can find it even when called on
// values detached from the generator that produced them.
func WithPrinter[T any](p Printer[T], g Generator[T]) Generator[T] {
	g.printer = p

	var zero T
	globalPrinters.register(reflect.TypeOf(&zero).Elem(), func(w io.Writer, v any) {
		p(w, v.(T))
	})

	return g
}

// withDefaultPrinter attaches p to g as a local decoration without
// publishing it to the global registry - used for this package's own
// primitive generators, which should offer a sane default without
// masking a user's later WithPrinter call for the same type.
func withDefaultPrinter[T any](g Generator[T], p Printer[T]) Generator[T] {
	g.printer = p
	return g
}

// renderValue formats v for a failure report, resolving the printer in
// CheckEq's documented priority order: an explicit printer (handled by
// the caller before renderValue is reached), then the most recent
// WithPrinter registration for v's runtime type, then a best-effort
// fallback derived from Go's %#v formatting. The generator that produced
// v is not consulted.
func renderValue(v any) string {
	t := reflect.TypeOf(v)

	if fn, ok := globalPrinters.lookup(t); ok {
		var b fmtBuffer
		fn(&b, v)
		return b.String()
	}

	return fallbackPrint(v)
}

func fallbackPrint(v any) string {
	return fmt.Sprintf("%#v", v)
}

// fmtBuffer is a minimal io.Writer backed by a byte slice, avoiding an
// import of bytes.Buffer purely for string accumulation.
type fmtBuffer struct {
	data []byte
}

func (b *fmtBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *fmtBuffer) String() string { return string(b.data) }

// Built-in printers for primitive generators.
var (
	ppInt    Printer[int]     = func(w io.Writer, v int) { Pp(w, "%d", v) }
	ppUint8  Printer[uint8]   = func(w io.Writer, v uint8) { Pp(w, "%d", v) }
	ppInt8   Printer[int8]    = func(w io.Writer, v int8) { Pp(w, "%d", v) }
	ppUint16 Printer[uint16]  = func(w io.Writer, v uint16) { Pp(w, "%d", v) }
	ppInt16  Printer[int16]   = func(w io.Writer, v int16) { Pp(w, "%d", v) }
	ppUint32 Printer[uint32]  = func(w io.Writer, v uint32) { Pp(w, "%d", v) }
	ppInt32  Printer[int32]   = func(w io.Writer, v int32) { Pp(w, "%d", v) }
	ppUint64 Printer[uint64]  = func(w io.Writer, v uint64) { Pp(w, "%d", v) }
	ppInt64  Printer[int64]   = func(w io.Writer, v int64) { Pp(w, "%d", v) }
	ppFloat  Printer[float64] = func(w io.Writer, v float64) { Pp(w, "%v", v) }
	ppBool   Printer[bool]    = func(w io.Writer, v bool) { Pp(w, "%t", v) }
	ppBytes  Printer[[]byte]  = func(w io.Writer, v []byte) { Pp(w, "%x", v) }
)

// PrintList returns a printer for []T built from elem, bracketing
// elements the way the built-in collection combinators expect their
// values to read in a failure report: "[e0, e1, e2]".
func PrintList[T any](elem Printer[T]) Printer[[]T] {
	return func(w io.Writer, v []T) {
		Pp(w, "[")

		for i, e := range v {
			if i > 0 {
				Pp(w, ", ")
			}

			elem(w, e)
		}

		Pp(w, "]")
	}
}

// PrintOption returns a printer for *T built from elem: "none" for a
// nil pointer, "some(...)" otherwise. [Option] generators produce *T so
// that "no value" and "zero value" remain distinguishable.
func PrintOption[T any](elem Printer[T]) Printer[*T] {
	return func(w io.Writer, v *T) {
		if v == nil {
			Pp(w, "none")
			return
		}

		Pp(w, "some(")
		elem(w, *v)
		Pp(w, ")")
	}
}
